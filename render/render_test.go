package render

import (
	"strings"
	"testing"

	"github.com/revelaction/igt/corpus"
	"github.com/revelaction/igt/file"
	"github.com/revelaction/igt/igt"
)

func testCorpus() *corpus.Corpus {
	return corpus.New([]*igt.IGT{
		igt.Parse("1", "zep-le: me-ku-tsu-te", "earth-DEF:CL NEG-one-CAUS-good"),
		igt.Parse("2", "qela petsilej-le: tshildza-te", "all gift-DEF:CL give.PRS-good"),
	})
}

func TestConcordanceTable(t *testing.T) {
	var b strings.Builder
	r := NewRenderer(&b)
	if err := r.Concordance(testCorpus(), corpus.Grammar); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "ID\tFORM\tGLOSS\tGLOSS_IN_SOURCE\tOCCURRENCE\tREF" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(out, "DEF") {
		t.Fatalf("output lacks DEF:\n%s", out)
	}
	// Most frequent entry first: le:/DEF occurs twice.
	first := strings.Split(lines[1], "\t")
	if first[1] != "le:" || first[4] != "2" {
		t.Fatalf("first data row = %q", lines[1])
	}
	if !strings.Contains(first[5], "1:0:1") || !strings.Contains(first[5], "2:1:1") {
		t.Fatalf("refs = %q", first[5])
	}
}

func TestConcordanceTieBreak(t *testing.T) {
	// Two single-occurrence entries: key order decides.
	c := corpus.New([]*igt.IGT{
		igt.Parse("1", "zu ab", "Z A"),
	})
	var b strings.Builder
	r := NewRenderer(&b)
	if err := r.Concordance(c, corpus.Form); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rows = %d", len(lines)-1)
	}
	if first := strings.Split(lines[1], "\t"); first[1] != "ab" {
		t.Fatalf("first row form = %q, want the lesser key", first[1])
	}
	if second := strings.Split(lines[2], "\t"); second[1] != "zu" {
		t.Fatalf("second row form = %q", second[1])
	}
}

func TestConceptsTable(t *testing.T) {
	var b strings.Builder
	r := NewRenderer(&b)
	if err := r.Concepts(testCorpus(), corpus.Grammar); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "ENGLISH") || !strings.Contains(out, "CAUS") {
		t.Fatalf("output:\n%s", out)
	}
	// The example columns carry a full phrase and gloss line.
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n")[1:] {
		cells := strings.Split(line, "\t")
		if len(cells) != 7 {
			t.Fatalf("cells = %d in %q", len(cells), line)
		}
		if cells[5] == "" || cells[6] == "" {
			t.Fatalf("missing example in %q", line)
		}
	}
}

func TestWordlistTable(t *testing.T) {
	var b strings.Builder
	r := NewRenderer(&b)
	if err := r.Wordlist(testCorpus(), nil); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "DOCULECT") || !strings.Contains(out, "lexicon") || !strings.Contains(out, "grammar") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestStats(t *testing.T) {
	var b strings.Builder
	r := NewRenderer(&b)
	if err := r.Stats(testCorpus()); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "examples\t2") || !strings.Contains(out, "morpheme-aligned\t2") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestIGTPlain(t *testing.T) {
	var b strings.Builder
	r := NewRenderer(&b)
	x := igt.Parse("ex1", "insul-arum", "island-GEN.PL")
	if err := r.IGT(x); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "ex1") || !strings.Contains(out, "insul-arum") {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(out, "genitive") {
		t.Fatalf("abbreviation key missing:\n%s", out)
	}
	if strings.Contains(out, Teal) {
		t.Fatal("color codes without HasColor")
	}
}

func TestJSONRenderer(t *testing.T) {
	var b strings.Builder
	r := NewJSONRenderer(&b)
	err := r.Render([]file.Row{{ID: "1", Phrase: "a", Gloss: "A"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"id": "1"`) {
		t.Fatalf("output: %s", b.String())
	}
}
