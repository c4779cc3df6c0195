// Package igt models single interlinear glossed text examples: a phrase
// aligned with a gloss line, together with the conformance checks of the
// Leipzig Glossing Rules.
package igt

import (
	"regexp"
	"strings"

	"github.com/revelaction/igt/lgr"
)

// DefaultPunctuation lists the characters stripped from surface forms
// before they are used as concordance keys.
const DefaultPunctuation = `,;.”“"()?!…‘’`

// DefaultParadigmMarker separates stacked glosses within one morpheme
// gloss ("get.dark:PRS").
const DefaultParadigmMarker = ":"

var grammaticalLabelRe = regexp.MustCompile(`^[A-Z0-9]+$`)

// Spec bundles the corpus-level parsing conventions: which characters
// separate morphemes, what counts as punctuation, and how morpheme glosses
// split into grammatical and lexical parts.
type Spec struct {
	// MorphemeSeparator overrides the LGR separator alphabet with a single
	// custom separator when non-empty. The override applies to
	// SplitMorphemes and everything built on it (corpus statistics);
	// word-gloss alignment and the concordances always parse on the LGR
	// alphabet.
	MorphemeSeparator string

	// Punctuation is the set of characters stripped from surface forms.
	Punctuation string

	// ParadigmMarker separates stacked glosses within one morpheme gloss.
	ParadigmMarker string

	// ConceptReplace is applied to gloss parts when deriving clean concept
	// labels, in order.
	ConceptReplace []ConceptReplacement
}

type ConceptReplacement struct {
	From, To string
}

// NewSpec returns a Spec with the LGR defaults.
func NewSpec() *Spec {
	return &Spec{
		Punctuation:    DefaultPunctuation,
		ParadigmMarker: DefaultParadigmMarker,
		ConceptReplace: []ConceptReplacement{
			{".", " "},
			{"†(", ""},
			{"†", ""},
		},
	}
}

// StripPunctuation removes all punctuation characters from s. The operation
// is idempotent.
func (sp *Spec) StripPunctuation(s string) string {
	var b strings.Builder
	for _, c := range s {
		if strings.ContainsRune(sp.Punctuation, c) {
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// IsGrammaticalGlossLabel reports whether s expresses a grammatical
// category rather than a lexical meaning: uppercase letters and digits
// only, so "ABL", "2DL" and "1" qualify while "stone" and "1Pl" do not.
func (sp *Spec) IsGrammaticalGlossLabel(s string) bool {
	return grammaticalLabelRe.MatchString(s)
}

// SplitMorphemes splits a word into its morphemes, dropping the separators.
// Infix content in angle brackets is unpacked into morphemes of its own,
// with the surrounding host material kept as separate morphemes on either
// side ("b<um>i~bili" yields "b", "um", "i", "bili"). A segment with an
// unterminated infix is passed through unchanged.
func (sp *Spec) SplitMorphemes(word string) []string {
	if sp.MorphemeSeparator != "" {
		return strings.Split(word, sp.MorphemeSeparator)
	}
	var res []string
	for _, seg := range lgr.SplitMorphemes(word) {
		if seg == "" || lgr.IsSeparator(seg) {
			continue
		}
		res = append(res, splitInfixes(seg)...)
	}
	return res
}

func splitInfixes(seg string) []string {
	start := strings.Index(seg, "<")
	if start < 0 {
		return []string{seg}
	}
	end := strings.Index(seg[start:], ">")
	if end < 0 {
		// Unterminated infix, keep the segment as is.
		return []string{seg}
	}
	end += start
	var res []string
	if pre := seg[:start]; pre != "" {
		res = append(res, pre)
	}
	if in := seg[start+1 : end]; in != "" {
		res = append(res, in)
	}
	if post := seg[end+1:]; post != "" {
		res = append(res, splitInfixes(post)...)
	}
	return res
}

// CleanConcept applies the concept replacements to a gloss part.
func (sp *Spec) CleanConcept(s string) string {
	for _, r := range sp.ConceptReplace {
		s = strings.ReplaceAll(s, r.From, r.To)
	}
	return strings.TrimSpace(s)
}

// GrammaticalGlosses returns the grammatical parts of a morpheme gloss,
// split on the paradigm marker: "get.dark:PRS" yields ["PRS"].
func (sp *Spec) GrammaticalGlosses(gloss string) []string {
	var res []string
	for _, part := range strings.Split(gloss, sp.ParadigmMarker) {
		if sp.IsGrammaticalGlossLabel(part) {
			res = append(res, part)
		}
	}
	return res
}

// LexicalGloss returns the cleaned lexical meaning of a morpheme gloss,
// joining multiple lexical parts with " // ": "exist:REDUP:all" yields
// "exist // all".
func (sp *Spec) LexicalGloss(gloss string) string {
	var parts []string
	for _, part := range strings.Split(gloss, sp.ParadigmMarker) {
		if !sp.IsGrammaticalGlossLabel(part) {
			parts = append(parts, part)
		}
	}
	return sp.CleanConcept(strings.Join(parts, " // "))
}
