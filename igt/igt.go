package igt

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/revelaction/igt/lgr"
)

// NonovertGlyph is the placeholder for phonologically null elements in the
// object language line (Rule 6). It never contributes to the primary text.
const NonovertGlyph = "∅"

// Conformance is the degree to which the phrase and gloss lines of an IGT
// are aligned.
type Conformance int

const (
	// Unaligned: phrase and gloss have different word counts (Rule 1
	// violated).
	Unaligned Conformance = iota

	// WordAligned: word counts match, but at least one word cannot be
	// aligned morpheme by morpheme with its gloss (Rule 2 violated).
	WordAligned

	// MorphemeAligned: every word aligns with its gloss morpheme by
	// morpheme.
	MorphemeAligned
)

func (c Conformance) String() string {
	switch c {
	case MorphemeAligned:
		return "morpheme-aligned"
	case WordAligned:
		return "word-aligned"
	}
	return "unaligned"
}

// spaceSentinel shields a space before "-" from word splitting (Rule 2A: a
// space-prefixed "-token" is prosodically free but attaches to the
// preceding word).
const spaceSentinel = "⁠"

var rule2A = regexp.MustCompile(`\s+-`)

// Tokenize splits an object language or gloss line into words on
// whitespace, keeping space-prefixed "-" groups attached to the preceding
// word.
func Tokenize(line string) []string {
	line = rule2A.ReplaceAllString(line, spaceSentinel+"-")
	fields := strings.Fields(line)
	for i, f := range fields {
		fields[i] = strings.ReplaceAll(f, spaceSentinel, " ")
	}
	return fields
}

// abbrGroup matches a parenthetical list of "ABBR = meaning" pairs inside a
// translation.
var abbrGroup = regexp.MustCompile(`\(([A-Z0-9]+\s*=\s*[^,)]+(?:,\s*[A-Z0-9]+\s*=\s*[^,)]+)*)\)`)

// Abbr is one gloss abbreviation with its (possibly unknown) description.
type Abbr struct {
	Label       string
	Description string
}

// IGT is one interlinear glossed text example: a phrase of words aligned
// with a parallel gloss line.
type IGT struct {
	ID          string
	Phrase      []string
	Gloss       []string
	Translation string
	Language    string
	Properties  map[string]string

	// Abbrs holds local abbreviation expansions harvested from the
	// translation's parenthetical "(ABBR = meaning)" annotations.
	Abbrs map[string]string
}

// Option configures an IGT at construction.
type Option func(*IGT)

// Translation attaches a free translation. Any trailing parenthetical
// "(ABBR = meaning, ...)" annotation is harvested into Abbrs and stripped.
func Translation(s string) Option { return func(x *IGT) { x.Translation = s } }

// Language sets the language identifier of the example.
func Language(s string) Option { return func(x *IGT) { x.Language = s } }

// Properties attaches the free-form extra columns of the source row.
func Properties(m map[string]string) Option { return func(x *IGT) { x.Properties = m } }

// New creates an IGT from pre-tokenized phrase and gloss lines.
func New(id string, phrase, gloss []string, opts ...Option) *IGT {
	x := &IGT{ID: id, Phrase: phrase, Gloss: gloss}
	for _, opt := range opts {
		opt(x)
	}
	x.harvestAbbrs()
	return x
}

// Parse creates an IGT from whitespace separated phrase and gloss lines,
// applying the Rule 2A tokenization.
func Parse(id, phrase, gloss string, opts ...Option) *IGT {
	return New(id, Tokenize(phrase), Tokenize(gloss), opts...)
}

func (x *IGT) harvestAbbrs() {
	if x.Translation == "" {
		return
	}
	m := abbrGroup.FindStringSubmatchIndex(x.Translation)
	if m == nil {
		return
	}
	x.Abbrs = map[string]string{}
	for _, pair := range strings.Split(x.Translation[m[2]:m[3]], ",") {
		label, desc, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		x.Abbrs[strings.TrimSpace(label)] = strings.TrimSpace(desc)
	}
	x.Translation = strings.TrimSpace(x.Translation[:m[0]] + x.Translation[m[1]:])
}

// PhraseText is the object language line.
func (x *IGT) PhraseText() string { return strings.Join(x.Phrase, " ") }

// GlossText is the gloss line.
func (x *IGT) GlossText() string { return strings.Join(x.Gloss, " ") }

// WordPair returns the word and gloss at position i.
func (x *IGT) WordPair(i int) (string, string) { return x.Phrase[i], x.Gloss[i] }

// MorphemePair returns the morpheme and gloss at word i, morpheme j.
func (x *IGT) MorphemePair(i, j int) (string, string, error) {
	gw, err := lgr.NewGlossedWord(x.Phrase[i], x.Gloss[i], true)
	if err != nil {
		return "", "", err
	}
	if j >= gw.Len() {
		return "", "", fmt.Errorf("word %d of %q has no morpheme %d", i, x.ID, j)
	}
	gm := gw.At(j)
	return gm.Morpheme.Text, gm.Gloss.Text, nil
}

// Check validates Rule 1 (word alignment) and, with strict set, Rule 2
// (morpheme alignment of every word).
func (x *IGT) Check(strict bool) error {
	if len(x.Phrase) != len(x.Gloss) {
		return fmt.Errorf("phrase and gloss are not word-aligned: %q :: %q",
			x.PhraseText(), x.GlossText())
	}
	if !strict {
		return nil
	}
	for i := range x.Phrase {
		if _, err := lgr.NewGlossedWord(x.Phrase[i], x.Gloss[i], true); err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
	}
	return nil
}

// IsValid is Check with the error converted to a boolean.
func (x *IGT) IsValid(strict bool) bool { return x.Check(strict) == nil }

// Conformance determines the alignment level by attempting morpheme-level
// validation first and degrading from there.
func (x *IGT) Conformance() Conformance {
	if x.Check(true) == nil {
		return MorphemeAligned
	}
	if x.Check(false) == nil {
		return WordAligned
	}
	return Unaligned
}

// GlossedWords aligns every word with its gloss. With strict set the first
// misaligned word aborts with an error; otherwise misaligned words carry
// IsValid == false.
func (x *IGT) GlossedWords(strict bool) ([]*lgr.GlossedWord, error) {
	n := len(x.Phrase)
	if len(x.Gloss) < n {
		n = len(x.Gloss)
	}
	res := make([]*lgr.GlossedWord, 0, n)
	for i := 0; i < n; i++ {
		gw, err := lgr.NewGlossedWord(x.Phrase[i], x.Gloss[i], strict)
		if err != nil {
			return nil, err
		}
		res = append(res, gw)
	}
	return res, nil
}

// PrimaryText reconstructs the unsegmented object language text: morpheme
// separators removed and non-overt "∅" morphemes dropped. When the example
// does not parse morpheme by morpheme, a naive separator stripping of the
// phrase is used instead.
func (x *IGT) PrimaryText() string {
	words, ok := x.primaryWords()
	if !ok {
		words = make([]string, len(x.Phrase))
		for i, w := range x.Phrase {
			words[i] = lgr.RemoveSeparators(w)
		}
	}
	return strings.Join(words, " ")
}

func (x *IGT) primaryWords() ([]string, bool) {
	if x.Check(true) != nil {
		return nil, false
	}
	words := make([]string, 0, len(x.Phrase))
	for i := range x.Phrase {
		gw, err := lgr.NewGlossedWord(x.Phrase[i], x.Gloss[i], true)
		if err != nil {
			return nil, false
		}
		var b strings.Builder
		for _, gm := range gw.Morphemes() {
			if gm.Morpheme.Text == NonovertGlyph {
				continue
			}
			b.WriteString(gm.Morpheme.Text)
		}
		words = append(words, b.String())
	}
	return words, true
}

// ProsodicWords re-segments the phrase by prosodic word: the internal space
// kept by a space-prefixed "-" group marks a prosodic boundary, so such
// groups come out as words of their own.
func (x *IGT) ProsodicWords() []string {
	return strings.Fields(x.PhraseText())
}

// MorphosyntacticWords re-segments the phrase by morphosyntactic word:
// "="-separated clitics become independent words.
func (x *IGT) MorphosyntacticWords() []string {
	var res []string
	for _, w := range x.Phrase {
		for _, part := range strings.Split(w, "=") {
			if part != "" {
				res = append(res, part)
			}
		}
	}
	return res
}

// GlossAbbrs collects the category labels and standard abbreviations used
// in the gloss line, in order of first appearance. Translation-embedded
// expansions take precedence over the standard abbreviation list; labels
// that resolve nowhere are reported with an empty description. The single
// letter "I" is never treated as an abbreviation.
func (x *IGT) GlossAbbrs() []Abbr {
	var res []Abbr
	seen := map[string]bool{}
	gws, _ := x.GlossedWords(false)
	for _, gw := range gws {
		for _, gm := range gw.Morphemes() {
			for _, ge := range gm.Gloss.Elements() {
				label := ge.Text
				if label == "I" || seen[label] {
					continue
				}
				if !ge.IsCategoryLabel() && !ge.IsStandardAbbreviation() {
					continue
				}
				seen[label] = true
				res = append(res, Abbr{Label: label, Description: x.describeAbbr(label, ge)})
			}
		}
	}
	return res
}

// Pretty writes the example as aligned interlinear lines followed by the
// translation and a key of the gloss abbreviations that have a known
// description.
func (x *IGT) Pretty(w io.Writer) {
	n := len(x.Phrase)
	if len(x.Gloss) > n {
		n = len(x.Gloss)
	}
	var phrase, gloss []string
	for i := 0; i < n; i++ {
		var pw, gw string
		if i < len(x.Phrase) {
			pw = x.Phrase[i]
		}
		if i < len(x.Gloss) {
			gw = x.Gloss[i]
		}
		width := utf8.RuneCountInString(pw)
		if g := utf8.RuneCountInString(gw); g > width {
			width = g
		}
		phrase = append(phrase, pw+strings.Repeat(" ", width-utf8.RuneCountInString(pw)))
		gloss = append(gloss, gw+strings.Repeat(" ", width-utf8.RuneCountInString(gw)))
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(phrase, "  "), " "))
	fmt.Fprintln(w, strings.TrimRight(strings.Join(gloss, "  "), " "))
	if x.Translation != "" {
		fmt.Fprintf(w, "‘%s’\n", strings.Trim(x.Translation, `'"‘’“”`))
	}
	for _, a := range x.GlossAbbrs() {
		if a.Description == "" {
			continue
		}
		fmt.Fprintf(w, "  %s = %s\n", a.Label, a.Description)
	}
}

func (x *IGT) describeAbbr(label string, ge lgr.Element) string {
	if desc, ok := x.Abbrs[label]; ok {
		return desc
	}
	if ge.IsStandardAbbreviation() {
		desc, _ := lgr.ExpandStandardAbbr(label)
		return desc
	}
	return ""
}
