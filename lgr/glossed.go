package lgr

import (
	"fmt"
	"strings"
	"unicode"
)

// GlossedMorpheme is an aligned (morpheme, gloss) pair within a word. Sep is
// the morpheme separator that preceded the pair, empty for the first
// morpheme of a word.
type GlossedMorpheme struct {
	Morpheme Morpheme
	Gloss    Morpheme
	Sep      string

	// index of this morpheme within the owning GlossedWord
	index int
}

// First reports whether this is the first morpheme of its word.
func (gm GlossedMorpheme) First() bool { return gm.index == 0 }

// LexicalConcepts returns the lexical meaning spans of the morpheme gloss.
// A colon- or semicolon-introduced element starts a new span; category
// labels are skipped; underscores read as spaces ("to.run;to_walk" yields
// "to run" and "to walk").
func (gm GlossedMorpheme) LexicalConcepts() []string {
	var res []string
	var s string
	for _, ge := range gm.Gloss.Elements() {
		if ge.Kind == AfterColon || ge.Kind == AfterSemicolon {
			// Something new is starting.
			if s != "" {
				res = append(res, s)
			}
			s = ""
			if !ge.IsCategoryLabel() {
				s = ge.Text
			}
		} else if !ge.IsCategoryLabel() {
			if s != "" {
				s += " "
			}
			s += ge.Text
		}
	}
	if s != "" {
		res = append(res, s)
	}
	for i, s := range res {
		res[i] = strings.ReplaceAll(s, "_", " ")
	}
	return res
}

// GrammaticalConcepts returns the grammatical category labels of the
// morpheme gloss: every element that is a category label or a standard
// (possibly person-prefixed) abbreviation.
func (gm GlossedMorpheme) GrammaticalConcepts() []string {
	var res []string
	for _, ge := range gm.Gloss.Elements() {
		if ge.IsCategoryLabel() || ge.IsStandardAbbreviation() {
			res = append(res, ge.Text)
		}
	}
	return res
}

// GlossedWord is a (word, gloss) pair, corresponding to two aligned items
// of an IGT according to LGR, decomposed into its GlossedMorphemes.
type GlossedWord struct {
	Word    string
	Gloss   string
	Strict  bool
	IsValid bool

	morphemes []GlossedMorpheme
}

// NewGlossedWord aligns the morphemes of word and gloss positionally. With
// strict set, any separator mismatch between the two strings is an error.
// Otherwise a mismatch marks the word invalid and the morpheme list is
// truncated at the point of divergence, keeping the fully aligned prefix.
func NewGlossedWord(word, gloss string, strict bool) (*GlossedWord, error) {
	gw := &GlossedWord{Word: word, Gloss: gloss, Strict: strict, IsValid: true}

	mm, gg := SplitMorphemes(word), SplitMorphemes(gloss)
	if len(mm) != len(gg) {
		if strict {
			return nil, fmt.Errorf("morpheme separator mismatch: %s :: %s", word, gloss)
		}
		gw.IsValid = false
	}

	n := len(mm)
	if len(gg) < n {
		n = len(gg)
	}
	sep := ""
	for i := 0; i < n; i++ {
		m, g := mm[i], gg[i]
		if IsSeparator(m) {
			if m != g {
				if strict {
					return nil, fmt.Errorf("morpheme separator mismatch: %s :: %s", word, gloss)
				}
				gw.IsValid = false
				break
			}
			sep = m
			continue
		}
		if m == "" || g == "" {
			if strict {
				return nil, fmt.Errorf("empty morpheme: %s :: %s", word, gloss)
			}
			gw.IsValid = false
			break
		}
		gw.morphemes = append(gw.morphemes, GlossedMorpheme{
			Morpheme: Morpheme{Text: m, Type: Word},
			Gloss:    Morpheme{Text: g, Type: Gloss},
			Sep:      sep,
			index:    len(gw.morphemes),
		})
		sep = ""
	}
	return gw, nil
}

// Len returns the number of aligned morphemes.
func (gw *GlossedWord) Len() int { return len(gw.morphemes) }

// At returns the glossed morpheme at position i.
func (gw *GlossedWord) At(i int) GlossedMorpheme { return gw.morphemes[i] }

// Morphemes returns the aligned morphemes in order.
func (gw *GlossedWord) Morphemes() []GlossedMorpheme { return gw.morphemes }

// Last reports whether gm is the last morpheme of gw.
func (gw *GlossedWord) Last(gm GlossedMorpheme) bool {
	return gm.index == len(gw.morphemes)-1
}

// StrippedWord returns the word with punctuation and math symbol characters
// removed, the surface form used for concordances.
func (gw *GlossedWord) StrippedWord() string {
	var b strings.Builder
	for _, c := range gw.Word {
		if unicode.In(c, unicode.Po, unicode.Pf, unicode.Ps, unicode.Pd, unicode.Pe, unicode.Sm) {
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// WordFromMorphemes reconstructs the word from its parsed morphemes.
func (gw *GlossedWord) WordFromMorphemes() string {
	var b strings.Builder
	for _, gm := range gw.morphemes {
		if !gm.First() {
			b.WriteString(gm.Sep)
		}
		b.WriteString(gm.Morpheme.Elements().String())
	}
	return b.String()
}

// GlossFromMorphemes reconstructs the gloss from its parsed morphemes.
func (gw *GlossedWord) GlossFromMorphemes() string {
	var b strings.Builder
	for _, gm := range gw.morphemes {
		if !gm.First() {
			b.WriteString(gm.Sep)
		}
		b.WriteString(gm.Gloss.Elements().String())
	}
	return b.String()
}
