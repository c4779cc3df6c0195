// Package corpus builds morpheme concordances, statistics and wordlist
// handoff records over collections of interlinear glossed texts.
package corpus

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revelaction/igt/igt"
	"github.com/revelaction/igt/lgr"
)

// Kind selects one of the three concordances kept per corpus.
type Kind int

const (
	// Grammar maps morpheme forms to the grammatical category labels of
	// their glosses.
	Grammar Kind = iota

	// Lexicon maps morpheme forms to the lexical meanings of their
	// glosses.
	Lexicon

	// Form maps morpheme forms to their raw glosses.
	Form
)

func (k Kind) String() string {
	switch k {
	case Grammar:
		return "grammar"
	case Lexicon:
		return "lexicon"
	}
	return "form"
}

// Ref points at one morpheme occurrence: example id, word index, morpheme
// index.
type Ref struct {
	IGT      string
	Word     int
	Morpheme int
}

func (r Ref) String() string { return fmt.Sprintf("%s:%d:%d", r.IGT, r.Word, r.Morpheme) }

// Key identifies one concordance entry.
type Key struct {
	Form          string
	Gloss         string
	GlossInSource string
	Language      string
}

// Concordance maps entry keys to their occurrence lists, remembering
// insertion order.
type Concordance struct {
	keys []Key
	occs map[Key][]Ref
}

func newConcordance() *Concordance {
	return &Concordance{occs: map[Key][]Ref{}}
}

func (c *Concordance) add(k Key, r Ref) {
	if _, ok := c.occs[k]; !ok {
		c.keys = append(c.keys, k)
	}
	c.occs[k] = append(c.occs[k], r)
}

// Len is the number of distinct entries.
func (c *Concordance) Len() int { return len(c.keys) }

// Keys returns the entry keys in insertion order.
func (c *Concordance) Keys() []Key { return c.keys }

// Occurrences returns the occurrence list of k in insertion order.
func (c *Concordance) Occurrences(k Key) []Ref { return c.occs[k] }

// Corpus is an ordered collection of IGT examples with derived
// concordances.
type Corpus struct {
	spec *igt.Spec
	igts []*igt.IGT
	byID map[string]*igt.IGT
	conc map[Kind]*Concordance
}

// Option configures a Corpus at construction.
type Option func(*Corpus)

// WithSpec overrides the default parsing conventions.
func WithSpec(sp *igt.Spec) Option { return func(c *Corpus) { c.spec = sp } }

// New builds a corpus and its concordances. Examples that are not
// morpheme-aligned are left out of the concordances entirely but stay in
// the corpus. Examples without an id get their positional index as id.
func New(igts []*igt.IGT, opts ...Option) *Corpus {
	c := &Corpus{
		spec: igt.NewSpec(),
		igts: igts,
		byID: map[string]*igt.IGT{},
		conc: map[Kind]*Concordance{
			Grammar: newConcordance(),
			Lexicon: newConcordance(),
			Form:    newConcordance(),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	for i, x := range igts {
		if x.ID == "" {
			x.ID = strconv.Itoa(i)
		}
		c.byID[x.ID] = x
		c.index(x)
	}
	return c
}

func (c *Corpus) index(x *igt.IGT) {
	if !x.IsValid(true) {
		return
	}
	for i := range x.Phrase {
		gw, err := lgr.NewGlossedWord(x.Phrase[i], x.Gloss[i], true)
		if err != nil {
			continue
		}
		for j, gm := range gw.Morphemes() {
			form := c.spec.StripPunctuation(gm.Morpheme.Text)
			if form == "" {
				continue
			}
			ref := Ref{IGT: x.ID, Word: i, Morpheme: j}
			concept := gm.Gloss.Text
			c.conc[Form].add(Key{form, concept, concept, x.Language}, ref)
			for _, g := range c.spec.GrammaticalGlosses(concept) {
				if deriv := c.spec.CleanConcept(g); deriv != "" {
					c.conc[Grammar].add(Key{form, deriv, g, x.Language}, ref)
				}
			}
			if lex := c.spec.LexicalGloss(concept); lex != "" {
				c.conc[Lexicon].add(Key{form, lex, concept, x.Language}, ref)
			}
		}
	}
}

// Len is the number of examples.
func (c *Corpus) Len() int { return len(c.igts) }

// IGTs returns the examples in corpus order.
func (c *Corpus) IGTs() []*igt.IGT { return c.igts }

// Spec returns the parsing conventions of the corpus.
func (c *Corpus) Spec() *igt.Spec { return c.spec }

// ByID looks an example up by its id.
func (c *Corpus) ByID(id string) (*igt.IGT, bool) {
	x, ok := c.byID[id]
	return x, ok
}

// Concordance returns the concordance of the given kind.
func (c *Corpus) Concordance(kind Kind) *Concordance { return c.conc[kind] }

// Monolingual reports whether all examples carry the same language.
func (c *Corpus) Monolingual() bool {
	langs := map[string]bool{}
	for _, x := range c.igts {
		langs[x.Language] = true
	}
	return len(langs) <= 1
}

// Stats counts examples, words and morphemes. The counts are taken from
// the phrase lines alone, so misaligned examples still contribute.
func (c *Corpus) Stats() (examples, words, morphemes int) {
	examples = len(c.igts)
	for _, x := range c.igts {
		for _, w := range x.Phrase {
			words++
			morphemes += len(c.spec.SplitMorphemes(w))
		}
	}
	return examples, words, morphemes
}

// ConformanceStats counts examples per alignment level.
func (c *Corpus) ConformanceStats() map[igt.Conformance]int {
	res := map[igt.Conformance]int{}
	for _, x := range c.igts {
		res[x.Conformance()]++
	}
	return res
}

// CheckGlosses writes a report of alignment violations to w. With level 1
// only word alignment is checked; level 2 adds morpheme alignment of every
// word. It returns the number of violations found.
func (c *Corpus) CheckGlosses(w io.Writer, level int) int {
	count := 0
	for _, x := range c.igts {
		if len(x.Phrase) != len(x.Gloss) {
			if level >= 1 {
				count++
				fmt.Fprintf(w, "[%s : words %d != glosses %d]\n", x.ID, len(x.Phrase), len(x.Gloss))
				fmt.Fprintln(w, x.PhraseText())
				fmt.Fprintln(w, x.GlossText())
				fmt.Fprintln(w, "---")
			}
			continue
		}
		if level < 2 {
			continue
		}
		for i := range x.Phrase {
			if _, err := lgr.NewGlossedWord(x.Phrase[i], x.Gloss[i], true); err != nil {
				count++
				fmt.Fprintf(w, "[%s:%d : %v]\n", x.ID, i, err)
				fmt.Fprintln(w, x.Phrase[i])
				fmt.Fprintln(w, x.Gloss[i])
				fmt.Fprintln(w, "---")
			}
		}
	}
	return count
}

// ConceptForm is one attested form of a concept.
type ConceptForm struct {
	Form          string
	GlossInSource string
	Occurrence    int
}

// Concept groups the forms attested for one gloss meaning.
type Concept struct {
	English string
	Forms   []ConceptForm
}

// Occurrence is the total occurrence count over all forms.
func (cc Concept) Occurrence() int {
	n := 0
	for _, f := range cc.Forms {
		n += f.Occurrence
	}
	return n
}

// Concepts groups the concordance of the given kind by gloss meaning, in
// insertion order.
func (c *Corpus) Concepts(kind Kind) []Concept {
	var res []Concept
	pos := map[string]int{}
	for _, k := range c.conc[kind].Keys() {
		i, ok := pos[k.Gloss]
		if !ok {
			i = len(res)
			pos[k.Gloss] = i
			res = append(res, Concept{English: k.Gloss})
		}
		res[i].Forms = append(res[i].Forms, ConceptForm{
			Form:          k.Form,
			GlossInSource: k.GlossInSource,
			Occurrence:    len(c.conc[kind].occs[k]),
		})
	}
	return res
}

// Example returns the phrase and gloss lines of the first occurrence of
// the given concordance key. A key with an empty language matches any
// language.
func (c *Corpus) Example(kind Kind, k Key) (phrase, gloss string, ok bool) {
	occs := c.conc[kind].Occurrences(k)
	if len(occs) == 0 && k.Language == "" {
		for _, have := range c.conc[kind].Keys() {
			if have.Form == k.Form && have.Gloss == k.Gloss && have.GlossInSource == k.GlossInSource {
				occs = c.conc[kind].Occurrences(have)
				break
			}
		}
	}
	if len(occs) == 0 {
		return "", "", false
	}
	x, ok := c.byID[occs[0].IGT]
	if !ok {
		return "", "", false
	}
	return x.PhraseText(), x.GlossText(), true
}

// Tokenizer turns a form into segments for wordlist handoff.
type Tokenizer func(form string) []string

// WordlistRecord is one row of the wordlist handoff: a concept and form
// pair with its occurrence evidence, ready for cognate detection tooling.
type WordlistRecord struct {
	Doculect        string
	Concept         string
	ConceptInSource string
	ConceptType     string
	Form            string
	Tokens          []string
	Occurrences     int
	WordForms       string
	GlossForms      string
	PhraseExample   string
	GlossExample    string
	References      []Ref
}

// Wordlist flattens the lexicon and grammar concordances into handoff
// records. The tokenizer is applied to each form; a nil tokenizer yields
// single-rune segments.
func (c *Corpus) Wordlist(tok Tokenizer) []WordlistRecord {
	if tok == nil {
		tok = func(form string) []string {
			return strings.Split(form, "")
		}
	}
	var res []WordlistRecord
	for _, kind := range []Kind{Lexicon, Grammar} {
		for _, k := range c.conc[kind].Keys() {
			occs := c.conc[kind].Occurrences(k)
			doculect := k.Language
			if doculect == "" {
				doculect = "base"
			}
			rec := WordlistRecord{
				Doculect:        doculect,
				Concept:         k.Gloss,
				ConceptInSource: k.GlossInSource,
				ConceptType:     kind.String(),
				Form:            k.Form,
				Tokens:          tok(k.Form),
				Occurrences:     len(occs),
				References:      occs,
			}
			if x, ok := c.byID[occs[0].IGT]; ok {
				rec.WordForms = x.Phrase[occs[0].Word]
				rec.GlossForms = x.Gloss[occs[0].Word]
				rec.PhraseExample = x.PhraseText()
				rec.GlossExample = x.GlossText()
			}
			res = append(res, rec)
		}
	}
	return res
}
