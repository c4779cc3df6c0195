// Package render writes corpora, concordances and concept tables to
// terminals and files.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/revelaction/igt/corpus"
	"github.com/revelaction/igt/igt"
)

var (
	Yellow = "\033[0;33m"
	Teal   = "\033[1;36m"
	Gray   = "\033[0;37m"
	Off    = "\033[0m"
)

// Renderer writes tab separated tables and highlighted examples.
type Renderer struct {
	W io.Writer

	HasColor bool
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w}
}

func (r *Renderer) color(code, s string) string {
	if !r.HasColor {
		return s
	}
	return code + s + Off
}

// Concordance writes the concordance of the given kind as a TSV table,
// most frequent entries first.
func (r *Renderer) Concordance(c *corpus.Corpus, kind corpus.Kind) error {
	conc := c.Concordance(kind)
	keys := append([]corpus.Key{}, conc.Keys()...)
	sort.SliceStable(keys, func(i, j int) bool {
		if ni, nj := len(conc.Occurrences(keys[i])), len(conc.Occurrences(keys[j])); ni != nj {
			return ni > nj
		}
		return lessKey(keys[i], keys[j])
	})

	multilingual := !c.Monolingual()
	header := []string{"ID"}
	if multilingual {
		header = append(header, "LANGUAGE_ID")
	}
	header = append(header, "FORM", "GLOSS", "GLOSS_IN_SOURCE", "OCCURRENCE", "REF")
	if err := r.row(header); err != nil {
		return err
	}
	for i, k := range keys {
		occs := conc.Occurrences(k)
		refs := make([]string, len(occs))
		for j, occ := range occs {
			refs[j] = occ.String()
		}
		row := []string{fmt.Sprint(i + 1)}
		if multilingual {
			row = append(row, k.Language)
		}
		row = append(row, k.Form, k.Gloss, k.GlossInSource,
			fmt.Sprint(len(occs)), strings.Join(refs, " "))
		if err := r.row(row); err != nil {
			return err
		}
	}
	return nil
}

// Concepts writes the concept table of the given kind as TSV, most
// frequent concepts first. Each concept carries one example phrase.
func (r *Renderer) Concepts(c *corpus.Corpus, kind corpus.Kind) error {
	concepts := c.Concepts(kind)
	sort.SliceStable(concepts, func(i, j int) bool {
		return concepts[i].Occurrence() > concepts[j].Occurrence()
	})
	header := []string{"ID", "ENGLISH", "OCCURRENCE", "CONCEPT_IN_SOURCE", "FORMS", "PHRASE", "GLOSS"}
	if err := r.row(header); err != nil {
		return err
	}
	for i, concept := range concepts {
		var inSource, forms []string
		for _, f := range concept.Forms {
			inSource = appendUnique(inSource, f.GlossInSource)
			forms = appendUnique(forms, f.Form)
		}
		sort.Strings(inSource)
		sort.Strings(forms)
		phrase, gloss, _ := c.Example(kind, corpus.Key{
			Form:          concept.Forms[0].Form,
			Gloss:         concept.English,
			GlossInSource: concept.Forms[0].GlossInSource,
		})
		row := []string{
			fmt.Sprint(i + 1),
			concept.English,
			fmt.Sprint(concept.Occurrence()),
			strings.Join(inSource, " // "),
			strings.Join(forms, " // "),
			phrase,
			gloss,
		}
		if err := r.row(row); err != nil {
			return err
		}
	}
	return nil
}

// Wordlist writes the wordlist handoff records as TSV.
func (r *Renderer) Wordlist(c *corpus.Corpus, tok corpus.Tokenizer) error {
	header := []string{
		"ID", "DOCULECT", "CONCEPT", "CONCEPT_IN_SOURCE", "CONCEPT_TYPE", "FORM",
		"TOKENS", "OCCURRENCES", "WORD_FORMS", "GLOSS_FORMS", "PHRASE_EXAMPLE",
		"GLOSS_EXAMPLE", "REFERENCES",
	}
	if err := r.row(header); err != nil {
		return err
	}
	for i, rec := range c.Wordlist(tok) {
		refs := make([]string, len(rec.References))
		for j, ref := range rec.References {
			refs[j] = ref.String()
		}
		row := []string{
			fmt.Sprint(i + 1),
			rec.Doculect,
			rec.Concept,
			rec.ConceptInSource,
			rec.ConceptType,
			rec.Form,
			strings.Join(rec.Tokens, " "),
			fmt.Sprint(rec.Occurrences),
			rec.WordForms,
			rec.GlossForms,
			rec.PhraseExample,
			rec.GlossExample,
			strings.Join(refs, " "),
		}
		if err := r.row(row); err != nil {
			return err
		}
	}
	return nil
}

// Stats writes example, word and morpheme counts plus the alignment
// breakdown.
func (r *Renderer) Stats(c *corpus.Corpus) error {
	e, w, m := c.Stats()
	if _, err := fmt.Fprintf(r.W, "examples\t%d\nwords\t%d\nmorphemes\t%d\n", e, w, m); err != nil {
		return err
	}
	conf := c.ConformanceStats()
	for _, level := range []igt.Conformance{igt.MorphemeAligned, igt.WordAligned, igt.Unaligned} {
		if _, err := fmt.Fprintf(r.W, "%s\t%d\n", level, conf[level]); err != nil {
			return err
		}
	}
	return nil
}

// IGT writes one example in interlinear layout, highlighting the object
// language line when color is on.
func (r *Renderer) IGT(x *igt.IGT) error {
	if x.ID != "" {
		if _, err := fmt.Fprintf(r.W, "%s\n", r.color(Gray, x.ID)); err != nil {
			return err
		}
	}
	var b strings.Builder
	x.Pretty(&b)
	lines := strings.SplitN(b.String(), "\n", 2)
	if len(lines) > 0 {
		if _, err := fmt.Fprintln(r.W, r.color(Teal, lines[0])); err != nil {
			return err
		}
	}
	if len(lines) > 1 && lines[1] != "" {
		if _, err := io.WriteString(r.W, lines[1]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) row(cells []string) error {
	_, err := fmt.Fprintln(r.W, strings.Join(cells, "\t"))
	return err
}

// lessKey orders equally frequent concordance entries by key.
func lessKey(a, b corpus.Key) bool {
	if a.Form != b.Form {
		return a.Form < b.Form
	}
	if a.Gloss != b.Gloss {
		return a.Gloss < b.Gloss
	}
	if a.GlossInSource != b.GlossInSource {
		return a.GlossInSource < b.GlossInSource
	}
	return a.Language < b.Language
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}
