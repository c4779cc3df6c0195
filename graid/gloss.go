package graid

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Gloss is one parsed annotation expression. String reproduces the
// canonical annotation; Describe renders a human readable account against
// the parser's symbol tables.
type Gloss interface {
	fmt.Stringer
	Describe(p *Parser) string
}

// Symbol is a free-standing symbol such as "nc" or corpus-specific
// additions, possibly prefixed with a morpheme separator.
type Symbol struct {
	Symbol string
	Sep    string
}

func (s *Symbol) String() string { return s.Sep + s.Symbol }

func (s *Symbol) Describe(p *Parser) string {
	return p.otherSymbols[s.Symbol]
}

func parseSymbol(ann string, p *Parser) (Gloss, error) {
	sep, rest := p.separator(ann)
	if _, ok := p.otherSymbols[rest]; ok {
		return &Symbol{Symbol: rest, Sep: sep}, nil
	}
	return nil, nil
}

// Boundary is a clause boundary annotation such as "##" or
// "#ds_cc.neg:p".
type Boundary struct {
	Type               string
	ClauseType         string
	DS                 bool
	Neg                bool
	Property           string
	Function           string
	FunctionQualifiers []string
	Qualifiers         []string
}

func (b *Boundary) String() string {
	var comps []string
	if b.DS {
		comps = append(comps, "ds")
	}
	if b.ClauseType != "" {
		comps = append(comps, b.ClauseType)
	}
	comps = append(comps, b.Qualifiers...)
	res := b.Type + strings.Join(comps, "_")
	if b.Neg {
		res += ".neg"
	} else if b.Property != "" {
		res += "." + b.Property
	}
	if b.Function != "" {
		res += ":" + b.Function
		for _, fq := range b.FunctionQualifiers {
			res += "_" + fq
		}
	}
	return res
}

func (b *Boundary) Describe(p *Parser) string {
	parts := []string{p.boundaryDescriptions[b.Type]}
	if b.DS {
		parts = append(parts, "direct speech")
	}
	if b.ClauseType != "" {
		parts = append(parts, p.clauseTypes[b.ClauseType])
	}
	for _, q := range b.Qualifiers {
		parts = append(parts, lookup(q, p.clauseBoundarySymbols))
	}
	if b.Neg {
		parts = append(parts, "negative polarity")
	}
	if b.Property != "" {
		parts = append(parts, lookup(b.Property, p.referentProperties))
	}
	if b.Function != "" {
		desc := lookup(b.Function, p.syntacticFunctions, p.predicativeFunctions)
		if len(b.FunctionQualifiers) > 0 {
			var qs []string
			for _, fq := range b.FunctionQualifiers {
				qs = append(qs, lookup(fq, p.syntacticFunctionSpecifiers))
			}
			desc += " (" + strings.Join(qs, "; ") + ")"
		}
		parts = append(parts, "function: "+desc)
	}
	return strings.Join(parts, ", ")
}

func parseBoundary(ann string, p *Parser) (Gloss, error) {
	marker := ""
	for _, m := range p.boundaryMarkers {
		if strings.HasPrefix(ann, m) {
			marker = m
			break
		}
	}
	if marker == "" {
		return nil, nil
	}
	b := &Boundary{Type: marker, Qualifiers: []string{}, FunctionQualifiers: []string{}}
	rem, function, hasFunction := strings.Cut(ann[len(marker):], ":")
	if hasFunction && function != "" {
		fns := strings.Split(function, "_")
		if len(fns) > 1 && hasKey(p.functionComposites, Composite{fns[0], fns[1]}) {
			b.Function = fns[0]
			b.FunctionQualifiers = append(b.FunctionQualifiers, fns[1])
			fns = fns[2:]
		} else if _, ok := p.predicativeFunctions[fns[0]]; ok {
			b.Function, fns = fns[0], fns[1:]
		} else if _, ok := p.syntacticFunctions[fns[0]]; ok {
			b.Function, fns = fns[0], fns[1:]
		} else {
			return nil, &ParseError{Input: ann, Reason: "unknown syntactic function " + fns[0]}
		}
		for _, fn := range fns {
			if _, ok := p.syntacticFunctionSpecifiers[fn]; !ok {
				return nil, &ParseError{Input: ann, Reason: "unknown function specifier " + fn}
			}
			b.FunctionQualifiers = append(b.FunctionQualifiers, fn)
		}
	}
	if rem != "" {
		if strings.HasSuffix(rem, ".neg") {
			rem = strings.TrimSuffix(rem, ".neg")
			b.Neg = true
		} else if before, prop, ok := strings.Cut(rem, "."); ok {
			rem = before
			if prop != "" {
				if _, known := p.referentProperties[prop]; !known {
					return nil, &ParseError{Input: ann, Reason: "unknown referent property " + prop}
				}
				b.Property = prop
			}
		}
	}
	if rem != "" {
		comps := map[string]bool{}
		for _, c := range strings.Split(rem, "_") {
			comps[c] = true
		}
		// "_neg" is also recognized, although the manual wants ".neg".
		if comps["ds"] {
			b.DS = true
			delete(comps, "ds")
		}
		if comps["neg"] {
			b.Neg = true
			delete(comps, "neg")
		}
		for ct := range p.clauseTypes {
			if comps[ct] {
				b.ClauseType = ct
				delete(comps, ct)
			}
		}
		for c := range comps {
			if _, ok := p.clauseBoundarySymbols[c]; !ok {
				return nil, &ParseError{Input: ann, Reason: "unknown clause boundary symbol " + c}
			}
			b.Qualifiers = append(b.Qualifiers, c)
		}
		sort.Strings(b.Qualifiers)
	}
	return b, nil
}

// Predicate is a predicate annotation such as "v:pred" or "=aux".
type Predicate struct {
	FormGloss          string
	Function           string
	Sep                string
	FormQualifiers     []string
	FunctionQualifiers []string
}

func (pr *Predicate) String() string {
	res := pr.Sep + strings.Join(append(append([]string{}, pr.FormQualifiers...), pr.FormGloss), "_")
	if pr.Function != "" {
		res += ":" + strings.Join(append([]string{pr.Function}, pr.FunctionQualifiers...), "_")
	}
	return res
}

func (pr *Predicate) Describe(p *Parser) string {
	res := "form: "
	if desc, ok := p.predicateComposites[Composite{pr.Sep, pr.FormGloss}]; ok {
		res += desc
	} else {
		res += lookup(pr.FormGloss, p.predicateGlosses)
	}
	if len(pr.FormQualifiers) > 0 {
		var qs []string
		for _, q := range pr.FormQualifiers {
			qs = append(qs, lookup(q, p.formGlossSpecifiers, p.predicateGlosses))
		}
		res += " (" + strings.Join(qs, "; ") + ")"
	}
	if pr.Function != "" {
		res += ". function: " + lookup(pr.Function, p.predicativeFunctions)
		if len(pr.FunctionQualifiers) > 0 {
			var qs []string
			for _, q := range pr.FunctionQualifiers {
				qs = append(qs, lookup(q, p.syntacticFunctionSpecifiers))
			}
			res += " (" + strings.Join(qs, "; ") + ")"
		}
	}
	return res
}

func parsePredicate(ann string, p *Parser) (Gloss, error) {
	orig := ann
	if hasKey2(p.syntacticFunctions, p.predicativeFunctions, ann) {
		ann = ":" + ann
	}
	ann, function, _ := strings.Cut(ann, ":")
	pr := &Predicate{}
	pr.Sep, ann = p.separator(ann)
	// Subconstituent-marked expressions like "lv_aux" are referent
	// glosses.
	for scm := range p.subconstituentMarkers {
		if ann == scm || strings.HasPrefix(ann, scm+"_") {
			return nil, nil
		}
	}
	comps := strings.Split(ann, "_")
	last := comps[len(comps)-1]
	if _, ok := p.predicateGlosses[last]; !ok {
		if len(comps) < 2 || !hasKey(p.predicateComposites, Composite{comps[len(comps)-2], last}) {
			return nil, nil
		}
	}
	if function != "" {
		fns := strings.Split(function, "_")
		if _, ok := p.predicativeFunctions[fns[0]]; !ok {
			return nil, &ParseError{Input: orig, Reason: "unknown predicative function " + fns[0]}
		}
		pr.Function = fns[0]
		for _, fn := range fns[1:] {
			if _, ok := p.syntacticFunctionSpecifiers[fn]; !ok {
				return nil, &ParseError{Input: orig, Reason: "unknown function specifier " + fn}
			}
			pr.FunctionQualifiers = append(pr.FunctionQualifiers, fn)
		}
	}
	pr.FormGloss = last
	comps = comps[:len(comps)-1]
	if len(comps) > 0 {
		if hasKey(p.predicateComposites, Composite{comps[len(comps)-1], pr.FormGloss}) {
			pr.FormQualifiers = []string{comps[len(comps)-1]}
			comps = comps[:len(comps)-1]
		}
		for i := len(comps) - 1; i >= 0; i-- {
			if _, ok := p.formGlossSpecifiers[comps[i]]; !ok {
				return nil, &ParseError{Input: orig, Reason: "unknown form gloss specifier " + comps[i]}
			}
			pr.FormQualifiers = append([]string{comps[i]}, pr.FormQualifiers...)
		}
	}
	return pr, nil
}

// Referent is a referent annotation such as "pro.h:s" or
// "rn_refl_pro.h:poss".
type Referent struct {
	FormGloss                string
	Function                 string
	Sep                      string
	Property                 string
	Subconstituent           string
	SubconstituentQualifiers []string
	FormQualifiers           []string
	FunctionQualifiers       []string
}

func (r *Referent) String() string {
	var comps []string
	if r.Subconstituent != "" {
		comps = append(comps, r.Subconstituent)
	}
	comps = append(comps, r.SubconstituentQualifiers...)
	comps = append(comps, r.FormQualifiers...)
	if r.FormGloss != "" {
		comps = append(comps, r.FormGloss)
	}
	res := r.Sep + strings.Join(comps, "_")
	if r.Property != "" {
		res += "." + r.Property
	}
	if r.Function != "" {
		fn := strings.Join(append([]string{r.Function}, r.FunctionQualifiers...), "_")
		// A bare function such as "voc" or "predex" has no form part to
		// attach the ":" to.
		if res == "" {
			return fn
		}
		res += ":" + fn
	}
	return res
}

func (r *Referent) Describe(p *Parser) string {
	var parts []string
	if r.Subconstituent != "" {
		desc := lookup(r.Subconstituent, p.subconstituentMarkers)
		if len(r.SubconstituentQualifiers) > 0 {
			var qs []string
			for _, q := range r.SubconstituentQualifiers {
				qs = append(qs, lookup(q, p.subconstituentSymbols[r.Subconstituent]))
			}
			desc += " (" + strings.Join(qs, "; ") + ")"
		}
		parts = append(parts, desc)
	}
	if r.FormGloss != "" {
		desc := "form: "
		if d, ok := p.formComposites[Composite{r.Sep, r.FormGloss}]; ok {
			desc += d
		} else {
			desc += lookup(r.FormGloss, p.formGlosses)
		}
		if len(r.FormQualifiers) > 0 {
			var qs []string
			for _, q := range r.FormQualifiers {
				qs = append(qs, lookup(q, p.formGlossSpecifiers, p.formGlosses))
			}
			desc += " (" + strings.Join(qs, "; ") + ")"
		}
		parts = append(parts, desc)
	}
	if r.Property != "" {
		parts = append(parts, lookup(r.Property, p.referentProperties))
	}
	if r.Function != "" {
		desc := lookup(r.Function, p.syntacticFunctions, p.predicativeFunctions)
		if len(r.FunctionQualifiers) > 0 {
			var qs []string
			for _, q := range r.FunctionQualifiers {
				qs = append(qs, lookup(q, p.syntacticFunctionSpecifiers, p.syntacticFunctions))
			}
			desc += " (" + strings.Join(qs, "; ") + ")"
		}
		parts = append(parts, "function: "+desc)
	}
	if len(parts) == 0 {
		return "referent"
	}
	return strings.Join(parts, ", ")
}

func parseReferent(ann string, p *Parser) (Gloss, error) {
	orig := ann
	if hasKey2(p.syntacticFunctions, p.predicativeFunctions, ann) {
		ann = ":" + ann
	}
	r := &Referent{}
	r.Sep, ann = p.separator(ann)
	if _, ok := p.subconstituentMarkers[ann]; ok {
		r.Subconstituent, ann = ann, ""
	} else {
		for scm := range p.subconstituentMarkers {
			if strings.HasPrefix(ann, scm+"_") {
				r.Subconstituent = scm
				ann = ann[len(scm)+1:]
				break
			}
		}
	}
	if syms := p.subconstituentSymbols[r.Subconstituent]; r.Subconstituent != "" && syms != nil {
		for {
			head, rest, _ := strings.Cut(ann, "_")
			if _, ok := syms[head]; !ok {
				break
			}
			r.SubconstituentQualifiers = append(r.SubconstituentQualifiers, head)
			ann = rest
		}
	}
	ann, function, _ := strings.Cut(ann, ":")
	if function != "" {
		fns := strings.Split(function, "_")
		if !hasKey2(p.syntacticFunctions, p.predicativeFunctions, fns[0]) {
			return nil, &ParseError{Input: orig, Reason: "unknown syntactic function " + fns[0]}
		}
		r.Function, fns = fns[0], fns[1:]
		if len(fns) == 1 && hasKey(p.functionComposites, Composite{r.Function, fns[0]}) {
			r.FunctionQualifiers = []string{fns[0]}
			fns = nil
		}
		for _, fn := range fns {
			if !hasKey2(p.syntacticFunctions, p.syntacticFunctionSpecifiers, fn) {
				return nil, nil
			}
			r.FunctionQualifiers = append(r.FunctionQualifiers, fn)
		}
	}
	if before, prop, ok := strings.Cut(ann, "."); ok {
		ann = before
		if prop != "" {
			if _, known := p.referentProperties[prop]; !known {
				return nil, &ParseError{Input: orig, Reason: "unknown referent property " + prop}
			}
			r.Property = prop
		}
	}
	if ann != "" {
		comps := strings.Split(ann, "_")
		last := comps[len(comps)-1]
		if _, ok := p.formGlosses[last]; !ok {
			if len(comps) < 2 || !hasKey(p.formComposites, Composite{comps[len(comps)-2], last}) {
				return nil, &ParseError{Input: orig, Reason: "unknown form gloss " + last}
			}
		}
		r.FormGloss = last
		comps = comps[:len(comps)-1]
		if len(comps) > 0 {
			if hasKey(p.formComposites, Composite{comps[len(comps)-1], r.FormGloss}) {
				r.FormQualifiers = []string{comps[len(comps)-1]}
				comps = comps[:len(comps)-1]
			}
			for i := len(comps) - 1; i >= 0; i-- {
				if !hasKey2(p.formGlossSpecifiers, p.formGlosses, comps[i]) {
					return nil, &ParseError{Input: orig, Reason: "unknown form gloss specifier " + comps[i]}
				}
				r.FormQualifiers = append([]string{comps[i]}, r.FormQualifiers...)
			}
		}
	}
	return r, nil
}

// CrossIndex is the optional annotation for cross-indexed referents,
// written "pro_<property>_<function>" with optional subconstituent marker
// and morpheme separator prefixes.
type CrossIndex struct {
	ReferentProperty     string
	Function             string
	SubconstituentMarker string
	Sep                  string
}

func (ci *CrossIndex) String() string {
	res := ci.Sep
	if ci.SubconstituentMarker != "" {
		res += ci.SubconstituentMarker + "_"
	}
	return res + "pro_" + ci.ReferentProperty + "_" + ci.Function
}

func (ci *CrossIndex) Describe(p *Parser) string {
	res := "cross-index: " + lookup(ci.ReferentProperty, p.referentProperties) +
		", function: " + lookup(ci.Function, p.syntacticFunctions)
	if ci.SubconstituentMarker != "" {
		res += ", " + lookup(ci.SubconstituentMarker, p.subconstituentMarkers)
	}
	return res
}

func parseCrossIndex(ann string, p *Parser) (Gloss, error) {
	ci := &CrossIndex{}
	ci.Sep, ann = p.separator(ann)
	for scm := range p.subconstituentMarkers {
		if strings.HasPrefix(ann, scm+"_") {
			ci.SubconstituentMarker = scm
			ann = ann[len(scm)+1:]
			break
		}
	}
	re, err := regexp.Compile(
		`^pro_(` + alternation(p.referentProperties) + `)_(` + alternation(p.syntacticFunctions) + `)$`)
	if err != nil {
		return nil, err
	}
	m := re.FindStringSubmatch(ann)
	if m == nil {
		return nil, nil
	}
	ci.ReferentProperty, ci.Function = m[1], m[2]
	return ci, nil
}

func alternation(symbols map[string]string) string {
	keys := make([]string, 0, len(symbols))
	for k := range symbols {
		keys = append(keys, regexp.QuoteMeta(k))
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

func hasKey(m map[Composite]string, k Composite) bool {
	_, ok := m[k]
	return ok
}

func hasKey2(m1, m2 map[string]string, k string) bool {
	if _, ok := m1[k]; ok {
		return true
	}
	_, ok := m2[k]
	return ok
}

// lookup resolves a symbol against the given tables, falling back to the
// symbol itself when no table knows it.
func lookup(sym string, tables ...map[string]string) string {
	for _, t := range tables {
		if desc, ok := t[sym]; ok && desc != "" {
			return desc
		}
	}
	return sym
}
