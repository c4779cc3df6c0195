package graid

import (
	"errors"
	"testing"
)

func defaultParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func parseOne(t *testing.T, p *Parser, expr string) Gloss {
	t.Helper()
	g, err := p.ParseExpression(expr)
	if err != nil {
		t.Fatalf("ParseExpression(%q): %v", expr, err)
	}
	return g
}

func TestParseRoundTrip(t *testing.T) {
	p := defaultParser(t)
	exprs := []string{
		"#nc", "#", "##", "#ds", "#rc.h:p", "#ds_rc", "#ac.neg",
		"other", "=other", "aux", "vother", "=aux", "-v",
		"lv", "0.h:a", "rn_refl_pro.h:poss", "adp", "=adp", "-pro",
		"voc", "predex", "pred",
	}
	for _, expr := range exprs {
		g := parseOne(t, p, expr)
		if g.String() != expr {
			t.Errorf("round trip %q -> %q", expr, g.String())
		}
		if g.Describe(p) == "" {
			t.Errorf("empty description for %q", expr)
		}
	}
}

func TestParseTypes(t *testing.T) {
	p := defaultParser(t)

	if _, ok := parseOne(t, p, "#nc").(*Symbol); !ok {
		t.Error("#nc is not a symbol")
	}
	if _, ok := parseOne(t, p, "##").(*Boundary); !ok {
		t.Error("## is not a boundary")
	}
	if _, ok := parseOne(t, p, "aux").(*Predicate); !ok {
		t.Error("aux is not a predicate")
	}
	if _, ok := parseOne(t, p, "adp").(*Referent); !ok {
		t.Error("adp is not a referent")
	}
	if _, ok := parseOne(t, p, "lv").(*Referent); !ok {
		t.Error("lv is not a referent")
	}

	b := parseOne(t, p, "#ds").(*Boundary)
	if !b.DS {
		t.Error("#ds lacks direct speech flag")
	}
	b = parseOne(t, p, "#ds_cc.neg:p").(*Boundary)
	if !b.DS || !b.Neg || b.ClauseType != "cc" || b.Function != "p" {
		t.Errorf("#ds_cc.neg:p parsed as %+v", b)
	}
	if b.String() != "#ds_cc.neg:p" {
		t.Errorf("round trip = %q", b.String())
	}

	r := parseOne(t, p, "pro.h:s").(*Referent)
	if r.FormGloss != "pro" || r.Property != "h" || r.Function != "s" {
		t.Errorf("pro.h:s parsed as %+v", r)
	}
	if r.String() != "pro.h:s" {
		t.Errorf("round trip = %q", r.String())
	}

	pr := parseOne(t, p, "v:pred").(*Predicate)
	if pr.Function != "pred" {
		t.Errorf("v:pred parsed as %+v", pr)
	}

	r = parseOne(t, p, "predex").(*Referent)
	if r.Function != "predex" || r.FormGloss != "" {
		t.Errorf("predex parsed as %+v", r)
	}
	r = parseOne(t, p, "voc").(*Referent)
	if r.FormGloss != "" || r.Function != "voc" {
		t.Errorf("voc parsed as %+v", r)
	}
	r = parseOne(t, p, "-pro").(*Referent)
	if r.FormGloss != "pro" || r.Sep != "-" {
		t.Errorf("-pro parsed as %+v", r)
	}
	if _, ok := parseOne(t, p, "-v").(*Predicate); !ok {
		t.Error("-v is not a predicate")
	}
}

func TestParseErrors(t *testing.T) {
	p := defaultParser(t)
	for _, expr := range []string{
		"xx.1:s",     // unknown form gloss
		"dem_v:pred", // unknown predicate specifier
		"x.x:s",      // unknown referent property
		"##rc_xx",    // unknown clause boundary symbol
		"##rc:xyz",   // unknown syntactic function
		"##rc.z",     // unknown referent property on boundary
		"v:pred_dem", // unknown function specifier
		"v:prex",     // unknown predicative function
		"pro.1:a_dem",
	} {
		if _, err := p.ParseExpression(expr); err == nil {
			t.Errorf("ParseExpression(%q) succeeded", expr)
		}
	}
}

func TestCustomSymbols(t *testing.T) {
	tests := []struct {
		cfg   Config
		expr  string
		check func(t *testing.T, g Gloss)
	}{
		{
			Config{
				FormGlosses:         map[string]string{"rex_f0": "x", "f0": "y"},
				FormGlossSpecifiers: map[string]string{"abc": ""},
			},
			"abc_rex_f0:s",
			func(t *testing.T, g Gloss) {
				r := g.(*Referent)
				if r.FormGloss != "f0" {
					t.Errorf("form gloss = %q", r.FormGloss)
				}
				if len(r.FormQualifiers) != 2 || r.FormQualifiers[0] != "abc" || r.FormQualifiers[1] != "rex" {
					t.Errorf("form qualifiers = %v", r.FormQualifiers)
				}
			},
		},
		{
			Config{PredicateGlosses: map[string]string{"ds_v": "x"}},
			"ds_v:pred",
			func(t *testing.T, g Gloss) {
				if _, ok := g.(*Predicate); !ok {
					t.Error("not a predicate")
				}
			},
		},
		{
			Config{SyntacticFunctions: map[string]string{"a_ds": "x"}},
			"pro.2:a_ds",
			func(t *testing.T, g Gloss) {
				r := g.(*Referent)
				if r.Function != "a" || len(r.FunctionQualifiers) != 1 || r.FunctionQualifiers[0] != "ds" {
					t.Errorf("parsed as %+v", r)
				}
			},
		},
		{
			Config{SubconstituentSymbols: map[string]SubconstituentSymbol{
				"dem": {Description: "x", AttachesTo: []string{"ln", "rn"}},
			}},
			"ln_dem",
			func(t *testing.T, g Gloss) {
				r := g.(*Referent)
				if r.Subconstituent != "ln" || len(r.SubconstituentQualifiers) != 1 || r.SubconstituentQualifiers[0] != "dem" {
					t.Errorf("parsed as %+v", r)
				}
			},
		},
		{
			Config{SubconstituentSymbols: map[string]SubconstituentSymbol{
				"aux": {Description: "x", AttachesTo: []string{"lv", "rv"}},
			}},
			"lv_aux",
			func(t *testing.T, g Gloss) {
				r := g.(*Referent)
				if r.Subconstituent != "lv" || len(r.SubconstituentQualifiers) != 1 || r.SubconstituentQualifiers[0] != "aux" {
					t.Errorf("parsed as %+v", r)
				}
			},
		},
		{
			Config{
				ClauseBoundarySymbols:       map[string]string{"dem": "x"},
				SyntacticFunctionSpecifiers: map[string]string{"dem": "x"},
			},
			"#cc_dem:a_dem",
			func(t *testing.T, g Gloss) {
				b := g.(*Boundary)
				if len(b.Qualifiers) != 1 || b.Qualifiers[0] != "dem" {
					t.Errorf("qualifiers = %v", b.Qualifiers)
				}
			},
		},
		{
			Config{SyntacticFunctionSpecifiers: map[string]string{"dem": "x"}},
			"pro.1:a_dem",
			func(t *testing.T, g Gloss) {
				r := g.(*Referent)
				if len(r.FunctionQualifiers) != 1 || r.FunctionQualifiers[0] != "dem" {
					t.Errorf("function qualifiers = %v", r.FunctionQualifiers)
				}
			},
		},
		{
			Config{WithCrossIndex: true},
			"-rn_pro_1_a",
			func(t *testing.T, g Gloss) {
				ci := g.(*CrossIndex)
				if ci.Function != "a" || ci.ReferentProperty != "1" || ci.SubconstituentMarker != "rn" || ci.Sep != "-" {
					t.Errorf("parsed as %+v", ci)
				}
			},
		},
		{
			Config{OtherSymbols: map[string]string{"xyz": ""}},
			"-xyz",
			func(t *testing.T, g Gloss) {
				s := g.(*Symbol)
				if s.Symbol != "xyz" || s.Sep != "-" {
					t.Errorf("parsed as %+v", s)
				}
			},
		},
	}
	for _, tt := range tests {
		p, err := New(&tt.cfg)
		if err != nil {
			t.Fatalf("New for %q: %v", tt.expr, err)
		}
		g := parseOne(t, p, tt.expr)
		if g.String() != tt.expr {
			t.Errorf("round trip %q -> %q", tt.expr, g.String())
		}
		tt.check(t, g)
	}
}

func TestCustomCompositeWithoutBase(t *testing.T) {
	cfg := &Config{FormGlosses: map[string]string{"rel_f0": "x"}}
	if _, err := New(cfg); err == nil {
		t.Fatal("composite without generic base accepted")
	}
}

func TestCustomCompositeNotAGenericSpecifier(t *testing.T) {
	p, err := New(&Config{FormGlosses: map[string]string{"rel_f0": "x", "f0": "y"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.ParseExpression("rel_pro:s"); err == nil {
		t.Fatal("rel accepted as specifier of pro")
	}
}

func TestMultiExpressionGloss(t *testing.T) {
	p := defaultParser(t)
	glosses, err := p.Parse("pro.2:s-aux")
	if err != nil {
		t.Fatal(err)
	}
	if len(glosses) != 2 {
		t.Fatalf("expressions = %d", len(glosses))
	}
	if _, ok := glosses[0].(*Referent); !ok {
		t.Error("first expression is not a referent")
	}
	pr, ok := glosses[1].(*Predicate)
	if !ok || pr.Sep != "-" {
		t.Errorf("second expression = %#v", glosses[1])
	}
}

func TestTrailingSeparator(t *testing.T) {
	p := defaultParser(t)
	_, err := p.Parse("pro.2:s-")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v", err)
	}
}

func TestBoundaryQualifierOrder(t *testing.T) {
	p, err := New(&Config{ClauseBoundarySymbols: map[string]string{"zz": "z", "aa": "a"}})
	if err != nil {
		t.Fatal(err)
	}
	b := parseOne(t, p, "#zz_aa_rc").(*Boundary)
	if len(b.Qualifiers) != 2 || b.Qualifiers[0] != "aa" || b.Qualifiers[1] != "zz" {
		t.Fatalf("qualifiers = %v", b.Qualifiers)
	}
	if b.String() != "#rc_aa_zz" {
		t.Fatalf("canonical form = %q", b.String())
	}
}
