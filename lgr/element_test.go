package lgr

import (
	"reflect"
	"testing"
)

func TestTokenizeElementsRoundTrip(t *testing.T) {
	for _, s := range []string{
		"COM>B",
		"island",
		"GEN;PL",
		"that:DAT;SG",
		"come.out",
		"boy[NOM.SG]",
		"tree(G4)",
		`PST\break`,
		"leave<PRS>",
		"rel(x.y)",
	} {
		es := TokenizeElements(s, Gloss)
		if got := es.String(); got != s {
			t.Errorf("round trip %q: got %q", s, got)
		}
	}
}

func TestTokenizeElementsKinds(t *testing.T) {
	tests := []struct {
		in   string
		want Elements
	}{
		{"come.out", Elements{{Plain, "come"}, {Plain, "out"}}},
		{"GEN;PL", Elements{{Plain, "GEN"}, {AfterSemicolon, "PL"}}},
		{"that:DAT", Elements{{Plain, "that"}, {AfterColon, "DAT"}}},
		{`PST\break`, Elements{{Plain, "PST"}, {AfterBackslash, "break"}}},
		{"COM>B", Elements{{Plain, "COM"}, {Patientlike, "B"}}},
		{"boy[NOM.SG]", Elements{{Plain, "boy"}, {Nonovert, "NOM"}, {Nonovert, "SG"}}},
		{"tree(G4)", Elements{{Plain, "tree"}, {Inherent, "G4"}}},
		{"<ACTFOC>buy", Elements{{Infix, "ACTFOC"}, {Plain, "buy"}}},
	}
	for _, tt := range tests {
		if got := TokenizeElements(tt.in, Gloss); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("TokenizeElements(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTokenizeElementsWordType(t *testing.T) {
	// Gloss-only delimiters must not fragment a word string.
	es := TokenizeElements("come.out", Word)
	if len(es) != 1 || es[0].Text != "come.out" {
		t.Fatalf("expected one element, got %v", es)
	}

	es = TokenizeElements("b<um>i", Word)
	want := Elements{{Plain, "b"}, {Infix, "um"}, {Plain, "i"}}
	if !reflect.DeepEqual(es, want) {
		t.Fatalf("TokenizeElements word = %v, want %v", es, want)
	}
}

func TestAgentlikeArgument(t *testing.T) {
	m := Morpheme{Text: "COM>B", Type: Gloss}
	es := m.Elements()
	if len(es) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(es))
	}
	if !es.IsAgentlikeArgument(0) {
		t.Errorf("expected first element to be agent-like")
	}
	if es.IsAgentlikeArgument(1) {
		t.Errorf("last element cannot be agent-like")
	}
	if !es[0].IsStandardAbbreviation() {
		t.Errorf("COM should be a standard abbreviation")
	}
	if !es[1].IsCategoryLabel() {
		t.Errorf("B should be a category label")
	}
}

func TestConsecutiveEnclosed(t *testing.T) {
	// Adjacent elements of the same enclosed kind share one bracket pair.
	a := TokenizeElements("rel(x)(y)", Gloss)
	b := TokenizeElements("rel(x.y)", Gloss)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical element lists, got %v and %v", a, b)
	}
	if got := a.String(); got != "rel(x.y)" {
		t.Errorf("serialize = %q, want %q", got, "rel(x.y)")
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"GEN", true},
		{"G4", true},
		{"B", true},
		{"1", false},
		{"2DU", false},
		{"stone", false},
	}
	for _, tt := range tests {
		if got := (Element{Text: tt.in}).IsCategoryLabel(); got != tt.want {
			t.Errorf("IsCategoryLabel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
