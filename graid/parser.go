// Package graid implements the GRAID 7.0 annotation scheme for glossing
// grammatical relations: symbol tables, an extensible parser and
// descriptions for parsed glosses.
//
// https://multicast.aspra.uni-bamberg.de/data/pubs/graid/Haig+Schnell2014_GRAID-manual_v7.0.pdf
package graid

import (
	"fmt"
	"strings"
)

// Composite is a two-part symbol: a prefix attached to a generic base
// symbol, written "pre_base" in annotations or, for the default morpheme
// separator forms, "-base" and "=base".
type Composite struct {
	Pre  string
	Base string
}

// GlossType parses one annotation expression. Returning a nil Gloss and a
// nil error signals that the expression is not of this type and dispatch
// should continue.
type GlossType func(annotation string, p *Parser) (Gloss, error)

// ParseError reports an annotation expression no gloss type accepted.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("cannot parse expression: %s", e.Input)
	}
	return fmt.Sprintf("cannot parse expression %s: %s", e.Input, e.Reason)
}

// SubconstituentSymbol is a custom symbol for detailed glossing of noun
// phrase or verb complex subconstituents, together with the markers it may
// attach to.
type SubconstituentSymbol struct {
	Description string
	AttachesTo  []string
}

// Config supplies corpus-specific extensions of the standard symbol
// tables. Map keys containing an underscore are interpreted as composite
// "pre_base" symbols; their base must be a generic symbol of the same
// table.
type Config struct {
	FormGlosses                 map[string]string
	FormGlossSpecifiers         map[string]string
	ReferentProperties          map[string]string
	SyntacticFunctions          map[string]string
	SyntacticFunctionSpecifiers map[string]string
	PredicateGlosses            map[string]string
	ClauseBoundarySymbols       map[string]string
	SubconstituentSymbols       map[string]SubconstituentSymbol
	OtherSymbols                map[string]string
	Extensions                  []GlossType
	WithCrossIndex              bool
}

// Parser holds the merged symbol tables and dispatches annotation
// expressions over the gloss types.
type Parser struct {
	morphemeSeparators []string
	separatorMeanings  map[string]string

	formGlosses         map[string]string
	formComposites      map[Composite]string
	formGlossPrefixes   map[string]string
	formGlossSpecifiers map[string]string

	syntacticFunctions          map[string]string
	functionComposites          map[Composite]string
	syntacticFunctionSpecifiers map[string]string

	predicateGlosses    map[string]string
	predicateComposites map[Composite]string

	predicativeFunctions map[string]string
	referentProperties   map[string]string

	boundaryMarkers       []string
	boundaryDescriptions  map[string]string
	clauseTypes           map[string]string
	clauseBoundarySymbols map[string]string

	subconstituentMarkers map[string]string
	subconstituentSymbols map[string]map[string]string

	otherSymbols map[string]string

	extensions []GlossType
}

// New builds a parser from the standard GRAID 7.0 symbol tables plus the
// given extensions. A composite symbol whose base is not a generic symbol
// of its table is a construction error.
func New(cfg *Config) (*Parser, error) {
	p := &Parser{
		morphemeSeparators: []string{"-", "="},
		separatorMeanings:  map[string]string{"-": "bound", "=": "clitic"},
		formGlosses: map[string]string{
			"np":    "noun phrase",
			"pro":   "free pronoun in full form",
			"0":     "covert argument / phonologically null argument",
			"refl":  "reflexive or reciprocal pronoun",
			"adp":   "adposition",
			"x":     "non-referential",
			"other": "form not of a listed type, or form not considered relevant",
		},
		formComposites: map[Composite]string{
			{"=", "pro"}: "weak clitic pronoun",
			{"-", "pro"}: "pronominal affix",
		},
		formGlossPrefixes: map[string]string{
			"w": "weak, phonologically lighter form",
		},
		formGlossSpecifiers: map[string]string{},
		syntacticFunctions: map[string]string{
			"s":     "intransitive subject",
			"S":     "intransitive subject",
			"a":     "transitive subject",
			"A":     "transitive subject",
			"p":     "transitive object",
			"P":     "transitive object",
			"ncs":   "non-canonical subject",
			"g":     "goal argument of a goal-oriented verb of motion, recipient of verb of transfer, addressee of verb of speech",
			"l":     "locative argument of verbs of location",
			"obl":   "oblique argument, excluding goals and locatives",
			"p2":    "secondary object",
			"dt":    "dislocated topic",
			"voc":   "vocative",
			"poss":  "possessor",
			"appos": "appositional",
			"other": "other function",
		},
		functionComposites:          map[Composite]string{},
		syntacticFunctionSpecifiers: map[string]string{},
		predicateGlosses: map[string]string{
			"v":      "verb or verb complex",
			"vother": "non-canonical verb-form",
			"cop":    "overt copular verb",
			"aux":    "auxiliary",
		},
		predicateComposites: map[Composite]string{
			{"-", "aux"}: "suffixal auxiliary",
			{"=", "aux"}: "clitic auxiliary",
		},
		predicativeFunctions: map[string]string{
			"pred":   "predicative function",
			"predex": "predicative function in existential / presentational constructions",
		},
		referentProperties: map[string]string{
			"1": "1st person referent(s)",
			"2": "2nd person referent(s)",
			"h": "human referent(s)",
			"d": "anthropomorphized referent(s)",
		},
		boundaryMarkers: []string{"##", "#", "%"},
		boundaryDescriptions: map[string]string{
			"##": "boundary of independent clause",
			"#":  "boundary of dependent clause",
			"%":  "end of a dependent clause",
		},
		clauseTypes: map[string]string{
			"rc": "relative clause",
			"cc": "complement clause",
			"ac": "adverbial clause",
		},
		clauseBoundarySymbols: map[string]string{},
		subconstituentMarkers: map[string]string{
			"ln": "NP-internal subconstituent occurring to the left of NP head",
			"rn": "NP-internal subconstituent occurring to the right of NP head",
			"lv": "subconstituent of verb complex occurring to the left of verbal head",
			"rv": "subconstituent of verb complex occurring to the right of verbal head",
		},
		subconstituentSymbols: map[string]map[string]string{},
		otherSymbols: map[string]string{
			"other": "forms / words / elements which are not relevant for the analysis",
			"nc":    "not considered / non-classifiable",
			"#nc":   "boundary, not considered",
			"##nc":  "boundary, not considered",
		},
	}
	if cfg == nil {
		cfg = &Config{}
	}
	if err := mergeLeft(p.formGlosses, p.formComposites, cfg.FormGlosses); err != nil {
		return nil, fmt.Errorf("form glosses: %w", err)
	}
	mergeSimple(p.formGlossSpecifiers, cfg.FormGlossSpecifiers)
	mergeSimple(p.referentProperties, cfg.ReferentProperties)
	if err := mergeRight(p.syntacticFunctions, p.functionComposites, cfg.SyntacticFunctions); err != nil {
		return nil, fmt.Errorf("syntactic functions: %w", err)
	}
	mergeSimple(p.syntacticFunctionSpecifiers, cfg.SyntacticFunctionSpecifiers)
	if err := mergeLeft(p.predicateGlosses, p.predicateComposites, cfg.PredicateGlosses); err != nil {
		return nil, fmt.Errorf("predicate glosses: %w", err)
	}
	mergeSimple(p.clauseBoundarySymbols, cfg.ClauseBoundarySymbols)
	mergeSimple(p.otherSymbols, cfg.OtherSymbols)
	for sym, spec := range cfg.SubconstituentSymbols {
		for _, marker := range spec.AttachesTo {
			if _, ok := p.subconstituentMarkers[marker]; !ok {
				return nil, fmt.Errorf("subconstituent symbol %s: unknown marker %s", sym, marker)
			}
			if p.subconstituentSymbols[marker] == nil {
				p.subconstituentSymbols[marker] = map[string]string{}
			}
			p.subconstituentSymbols[marker][sym] = spec.Description
		}
	}
	p.extensions = append(p.extensions, cfg.Extensions...)
	if cfg.WithCrossIndex {
		p.extensions = append(p.extensions, parseCrossIndex)
	}
	return p, nil
}

func mergeSimple(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

// mergeLeft adds custom symbols whose underscore prefix attaches to the
// left of a generic base: "rel_pro" requires "pro".
func mergeLeft(simple map[string]string, comp map[Composite]string, src map[string]string) error {
	return merge(simple, comp, src, func(c Composite) string { return c.Base })
}

// mergeRight adds custom symbols whose underscore suffix attaches to the
// right of a generic base: "a_ds" requires "a".
func mergeRight(simple map[string]string, comp map[Composite]string, src map[string]string) error {
	return merge(simple, comp, src, func(c Composite) string { return c.Pre })
}

func merge(simple map[string]string, comp map[Composite]string, src map[string]string, core func(Composite) string) error {
	var composites []Composite
	for k, v := range src {
		switch parts := strings.Split(k, "_"); len(parts) {
		case 1:
			simple[k] = v
		case 2:
			c := Composite{parts[0], parts[1]}
			comp[c] = v
			composites = append(composites, c)
		default:
			return fmt.Errorf("symbol %s has more than one underscore", k)
		}
	}
	for _, c := range composites {
		if _, ok := simple[core(c)]; !ok {
			return fmt.Errorf("core component of composite symbol %s_%s is not a generic symbol", c.Pre, c.Base)
		}
	}
	return nil
}

// separator returns the morpheme separator prefix of ann, if any.
func (p *Parser) separator(ann string) (string, string) {
	for _, sep := range p.morphemeSeparators {
		if strings.HasPrefix(ann, sep) && len(ann) > len(sep) {
			return sep, ann[len(sep):]
		}
	}
	return "", ann
}

// expressions splits a gloss into morpheme expressions, attaching each
// separator to the expression it precedes.
func (p *Parser) expressions(gloss string) ([]string, error) {
	var res []string
	sep := ""
	rest := gloss
	seps := strings.Join(p.morphemeSeparators, "")
	for rest != "" {
		i := strings.IndexAny(rest, seps)
		if i < 0 {
			res = append(res, sep+rest)
			sep = ""
			break
		}
		if i > 0 {
			res = append(res, sep+rest[:i])
		} else if sep != "" {
			return nil, &ParseError{Input: gloss, Reason: "consecutive morpheme separators"}
		}
		sep = rest[i : i+1]
		rest = rest[i+1:]
	}
	if sep != "" {
		return nil, &ParseError{Input: gloss, Reason: "trailing morpheme separator"}
	}
	return res, nil
}

// Parse parses a full GRAID gloss, which may combine several
// separator-joined expressions.
func (p *Parser) Parse(gloss string) ([]Gloss, error) {
	exprs, err := p.expressions(strings.TrimSpace(gloss))
	if err != nil {
		return nil, err
	}
	res := make([]Gloss, 0, len(exprs))
	for _, expr := range exprs {
		g, err := p.ParseExpression(expr)
		if err != nil {
			return nil, err
		}
		res = append(res, g)
	}
	return res, nil
}

// ParseExpression dispatches one expression over the gloss types:
// extensions first, then symbols, clause boundaries, predicates and
// referents.
func (p *Parser) ParseExpression(expr string) (Gloss, error) {
	types := append(append([]GlossType{}, p.extensions...),
		parseSymbol, parseBoundary, parsePredicate, parseReferent)
	for _, typ := range types {
		g, err := typ(expr, p)
		if err != nil {
			return nil, err
		}
		if g != nil {
			return g, nil
		}
	}
	return nil, &ParseError{Input: expr}
}

// Symbols returns every simple annotation symbol the parser knows,
// mapped to its description. Composite symbols are rendered with their
// separator prefix.
func (p *Parser) Symbols() map[string]string {
	out := map[string]string{}
	for _, tbl := range []map[string]string{
		p.formGlosses, p.syntacticFunctions, p.predicateGlosses,
		p.predicativeFunctions, p.referentProperties,
		p.boundaryDescriptions, p.clauseTypes, p.clauseBoundarySymbols,
		p.subconstituentMarkers, p.otherSymbols,
	} {
		for sym, desc := range tbl {
			out[sym] = desc
		}
	}
	for comp, desc := range p.formComposites {
		out[comp.Pre+comp.Base] = desc
	}
	for comp, desc := range p.predicateComposites {
		out[comp.Pre+comp.Base] = desc
	}
	return out
}
