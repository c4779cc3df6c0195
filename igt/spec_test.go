package igt

import (
	"strings"
	"testing"
)

func TestSpecSplitMorphemes(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"yerak~rak-im", "yerak rak im"},
		{"b<um>i~bili", "b um i bili"},
		{"palasi=lu", "palasi lu"},
		{"abur-u-n", "abur u n"},
		{"2DU>3SG-FUT-poke", "2DU>3SG FUT poke"},
		// Infix brackets crossing a separator are left untouched.
		{"a<b-c>d", "a<b c>d"},
	}
	sp := NewSpec()
	for _, tt := range tests {
		got := strings.Join(sp.SplitMorphemes(tt.word), " ")
		if got != tt.want {
			t.Errorf("SplitMorphemes(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestSpecSplitMorphemesCustomSeparator(t *testing.T) {
	sp := NewSpec()
	sp.MorphemeSeparator = "#"
	got := sp.SplitMorphemes("a#d")
	if len(got) != 2 || got[0] != "a" || got[1] != "d" {
		t.Fatalf("SplitMorphemes(a#d) = %v", got)
	}
}

func TestSpecGrammaticalGlossLabel(t *testing.T) {
	sp := NewSpec()
	for _, label := range []string{"ABL", "2DL", "ZZZ"} {
		if !sp.IsGrammaticalGlossLabel(label) {
			t.Errorf("IsGrammaticalGlossLabel(%q) = false", label)
		}
	}
	for _, label := range []string{"stone", "1Pl", ""} {
		if sp.IsGrammaticalGlossLabel(label) {
			t.Errorf("IsGrammaticalGlossLabel(%q) = true", label)
		}
	}
}

func TestSpecStripPunctuation(t *testing.T) {
	sp := NewSpec()
	if got := sp.StripPunctuation(`something."`); got != "something" {
		t.Fatalf("StripPunctuation = %q", got)
	}
	// Idempotent.
	if got := sp.StripPunctuation("something"); got != "something" {
		t.Fatalf("StripPunctuation twice = %q", got)
	}
}

func TestSpecGrammaticalGlosses(t *testing.T) {
	sp := NewSpec()
	got := sp.GrammaticalGlosses("get.dark:PRS")
	if len(got) != 1 || got[0] != "PRS" {
		t.Fatalf("GrammaticalGlosses(get.dark:PRS) = %v", got)
	}
	got = sp.GrammaticalGlosses("exist:REDUP:all")
	if len(got) != 1 || got[0] != "REDUP" {
		t.Fatalf("GrammaticalGlosses(exist:REDUP:all) = %v", got)
	}
}

func TestSpecLexicalGloss(t *testing.T) {
	sp := NewSpec()
	if got := sp.LexicalGloss("get.dark:PRS"); got != "get dark" {
		t.Fatalf("LexicalGloss(get.dark:PRS) = %q", got)
	}
	if got := sp.LexicalGloss("exist:REDUP:all"); got != "exist // all" {
		t.Fatalf("LexicalGloss(exist:REDUP:all) = %q", got)
	}
}
