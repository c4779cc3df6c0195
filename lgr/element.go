// Package lgr implements the morpheme and gloss notation proposed by the
// Leipzig Glossing Rules.
//
// According to LGR Rule 1, object language and gloss lines have to be
// word-aligned. Such aligned pairs of a word and a corresponding gloss are
// modeled by GlossedWord.
package lgr

import "regexp"

// ElementKind identifies the type of a gloss element by the delimiter that
// introduced it.
type ElementKind int

const (
	// Plain is a gloss element separated by "." (Rule 4).
	Plain ElementKind = iota

	// Infix is enclosed in angle brackets (Rule 9).
	Infix

	// AfterSemicolon is a distinct gloss element separated by ";" (Rule 4B).
	AfterSemicolon

	// AfterColon marks a gloss element corresponding to a "hidden" object
	// language element (Rule 4C).
	AfterColon

	// AfterBackslash marks morphophonological change (Rule 4D).
	AfterBackslash

	// Patientlike marks a patient-like argument with a leading ">" (Rule 4E).
	// The agent-like argument is the preceding element.
	Patientlike

	// Nonovert is a non-overt element enclosed in square brackets (Rule 6).
	Nonovert

	// Inherent is an inherent category enclosed in round brackets (Rule 7).
	Inherent
)

// delimiter describes how one element kind is delimited in a gloss string.
// Kinds with end == 0 run until the next delimiter or the end of the string.
type delimiter struct {
	start     rune
	end       rune
	glossOnly bool
}

var delimiters = map[ElementKind]delimiter{
	Plain:          {start: '.', glossOnly: true},
	Infix:          {start: '<', end: '>'},
	AfterSemicolon: {start: ';', glossOnly: true},
	AfterColon:     {start: ':', glossOnly: true},
	AfterBackslash: {start: '\\', glossOnly: true},
	Patientlike:    {start: '>', glossOnly: true},
	Nonovert:       {start: '[', end: ']', glossOnly: true},
	Inherent:       {start: '(', end: ')', glossOnly: true},
}

var categoryLabelRe = regexp.MustCompile(`^[A-Z][A-Z0-9]*$`)

// Element is one typed component of a morpheme gloss.
type Element struct {
	Kind ElementKind
	Text string
}

// IsCategoryLabel reports whether the element text looks like a grammatical
// category label (all-caps, starting with a letter).
func (e Element) IsCategoryLabel() bool {
	return categoryLabelRe.MatchString(e.Text)
}

// IsStandardAbbreviation reports whether the element text is one of the
// abbreviations listed in the LGR standard, optionally prefixed with a
// person marker.
func (e Element) IsStandardAbbreviation() bool {
	return IsStandardAbbr(e.Text)
}

// Elements is the ordered list of gloss elements of one morpheme. Neighbor
// relations between elements are positional: the element following the one
// at index i sits at index i+1.
type Elements []Element

// Next returns the element following the one at index i.
func (es Elements) Next(i int) (Element, bool) {
	if i+1 >= len(es) {
		return Element{}, false
	}
	return es[i+1], true
}

// Prev returns the element preceding the one at index i.
func (es Elements) Prev(i int) (Element, bool) {
	if i == 0 || i > len(es) {
		return Element{}, false
	}
	return es[i-1], true
}

// IsAgentlikeArgument reports whether the element at index i is the
// agent-like argument of a ">" construction, i.e. is immediately followed by
// a patient-like argument (Rule 4E).
func (es Elements) IsAgentlikeArgument(i int) bool {
	next, ok := es.Next(i)
	return ok && next.Kind == Patientlike
}

// String reconstructs the gloss string the elements were parsed from.
// Immediately adjacent elements sharing an enclosing delimiter pair are
// rendered inside a single pair, separated by ".": Inherent elements "x"
// and "y" serialize as "(x.y)".
func (es Elements) String() string {
	var s []rune
	var prevEnd rune
	for _, e := range es {
		d := delimiters[e.Kind]
		if prevEnd != 0 && d.end != 0 && d.end == prevEnd {
			// Re-open the previous pair: drop its end marker and join
			// with the plain element separator.
			s = s[:len(s)-1]
			s = append(s, delimiters[Plain].start)
			s = append(s, []rune(e.Text)...)
			s = append(s, d.end)
		} else {
			if (len(s) > 0 && prevEnd == 0) || d.end != 0 {
				s = append(s, d.start)
			}
			s = append(s, []rune(e.Text)...)
			if d.end != 0 {
				s = append(s, d.end)
			}
		}
		prevEnd = d.end
	}
	return string(s)
}

// TokenizeElements splits one morpheme's text into its typed gloss elements.
// For morphemes of type Word only enclosed delimiters (infix brackets) are
// recognized; the gloss-only delimiters must not fragment a word string.
// A complete morpheme gloss may start with a delimiter; enclosed elements
// missing their closing bracket run to the end of the string.
func TokenizeElements(s string, typ MorphemeType) Elements {
	starts := make(map[rune]ElementKind)
	for kind, d := range delimiters {
		if !d.glossOnly || typ == Gloss {
			starts[d.start] = kind
		}
	}

	var res Elements
	var buf []rune
	kind := Plain
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		k, isStart := starts[c]
		if !isStart {
			buf = append(buf, c)
			continue
		}
		if len(buf) > 0 {
			res = append(res, Element{Kind: kind, Text: string(buf)})
			buf = nil
		}
		kind = k
		if end := delimiters[k].end; end != 0 && i+1 < len(rs) {
			// Consume up to the matching end marker, or the end of
			// the string for unterminated pairs.
			var enc []rune
			for i++; i < len(rs) && rs[i] != end; i++ {
				enc = append(enc, rs[i])
			}
			for _, part := range splitRunes(enc, delimiters[Plain].start) {
				res = append(res, Element{Kind: k, Text: part})
			}
			kind = Plain
		}
	}
	if len(buf) > 0 {
		res = append(res, Element{Kind: kind, Text: string(buf)})
	}
	return res
}

func splitRunes(rs []rune, sep rune) []string {
	var parts []string
	var cur []rune
	for _, r := range rs {
		if r == sep {
			parts = append(parts, string(cur))
			cur = nil
			continue
		}
		cur = append(cur, r)
	}
	return append(parts, string(cur))
}
