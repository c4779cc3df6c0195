package lgr

import "strings"

// MorphemeType distinguishes the two lines a morpheme can come from.
type MorphemeType int

const (
	Word MorphemeType = iota
	Gloss
)

// Separators lists the morpheme separators of the LGR: "-" (Rule 2),
// "=" for clitics (Rule 2) and "~" for reduplication (Rule 10).
const Separators = "-=~"

// IsSeparator reports whether s is a single morpheme separator character.
func IsSeparator(s string) bool {
	return len(s) == 1 && strings.ContainsRune(Separators, rune(s[0]))
}

// SplitMorphemes splits s into segments interleaved with the separators
// that delimit them. Separators are kept as items of their own, so the
// result always has odd length and segments sit at even indices. Segments
// may be empty if s starts or ends with a separator.
func SplitMorphemes(s string) []string {
	res := []string{}
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.ContainsRune(Separators, rune(s[i])) {
			res = append(res, s[start:i], s[i:i+1])
			start = i + 1
		}
	}
	return append(res, s[start:])
}

// RemoveSeparators returns s with all morpheme separator characters removed,
// yielding the primary text form of a word.
func RemoveSeparators(s string) string {
	var b strings.Builder
	for _, part := range SplitMorphemes(s) {
		if !IsSeparator(part) {
			b.WriteString(part)
		}
	}
	return b.String()
}

// Morpheme is one segment of a word or gloss string.
type Morpheme struct {
	Text string
	Type MorphemeType
}

func (m Morpheme) String() string { return m.Text }

// Elements tokenizes the morpheme text into its gloss elements. The result
// is only meaningful for morphemes of type Gloss; for Word morphemes only
// infix brackets are recognized.
func (m Morpheme) Elements() Elements {
	return TokenizeElements(m.Text, m.Type)
}
