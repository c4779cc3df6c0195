package lgr

// Abbreviations of the LGR standard, appendix "List of standard
// abbreviations".
var Abbreviations = map[string]string{
	"A":     "agent-like argument of canonical transitive verb",
	"ABL":   "ablative",
	"ABS":   "absolutive",
	"ACC":   "accusative",
	"ADJ":   "adjective",
	"ADV":   "adverb(ial)",
	"AGR":   "agreement",
	"ALL":   "allative",
	"ANTIP": "antipassive",
	"APPL":  "applicative",
	"ART":   "article",
	"AUX":   "auxiliary",
	"BEN":   "benefactive",
	"CAUS":  "causative",
	"CLF":   "classifier",
	"COM":   "comitative",
	"COMP":  "complementizer",
	"COMPL": "completive",
	"COND":  "conditional",
	"COP":   "copula",
	"CVB":   "converb",
	"DAT":   "dative",
	"DECL":  "declarative",
	"DEF":   "definite",
	"DEM":   "demonstrative",
	"DET":   "determiner",
	"DIST":  "distal",
	"DISTR": "distributive",
	"DU":    "dual",
	"DUR":   "durative",
	"ERG":   "ergative",
	"EXCL":  "exclusive",
	"F":     "feminine",
	"FOC":   "focus",
	"FUT":   "future",
	"GEN":   "genitive",
	"IMP":   "imperative",
	"INCL":  "inclusive",
	"IND":   "indicative",
	"INDF":  "indefinite",
	"INF":   "infinitive",
	"INS":   "instrumental",
	"INTR":  "intransitive",
	"IPFV":  "imperfective",
	"IRR":   "irrealis",
	"LOC":   "locative",
	"M":     "masculine",
	"N":     "neuter",
	"NEG":   "negation, negative",
	"NMLZ":  "nominalizer/nominalization",
	"NOM":   "nominative",
	"OBJ":   "object",
	"OBL":   "oblique",
	"P":     "patient-like argument of canonical transitive verb",
	"PASS":  "passive",
	"PFV":   "perfective",
	"PL":    "plural",
	"POSS":  "possessive",
	"PRED":  "predicative",
	"PRF":   "perfect",
	"PRS":   "present",
	"PROG":  "progressive",
	"PROH":  "prohibitive",
	"PROX":  "proximal/proximate",
	"PST":   "past",
	"PTCP":  "participle",
	"PURP":  "purposive",
	"Q":     "question particle/marker",
	"QUOT":  "quotative",
	"RECP":  "reciprocal",
	"REFL":  "reflexive",
	"REL":   "relative",
	"RES":   "resultative",
	"S":     "single argument of canonical intransitive verb",
	"SBJ":   "subject",
	"SBJV":  "subjunctive",
	"SG":    "singular",
	"TOP":   "topic",
	"TR":    "transitive",
	"VOC":   "vocative",
}

var persons = map[string]string{
	"1":  "first person",
	"2":  "second person",
	"3":  "third person",
	"12": "first person inclusive",
}

// splitPerson splits a person-marker prefix off label, trying the
// two-character marker "12" before the one-character markers.
func splitPerson(label string) (string, string, bool) {
	for _, n := range []int{2, 1} {
		if len(label) <= n {
			continue
		}
		if person, ok := persons[label[:n]]; ok {
			return person, label[n:], true
		}
	}
	return "", "", false
}

// IsStandardAbbr reports whether label is a standard LGR abbreviation,
// optionally prefixed with a person marker (1, 2, 3 or 12). Labels carrying
// any other prefix do not count: "1SG" is standard, "A1SG" is not.
func IsStandardAbbr(label string) bool {
	if _, ok := Abbreviations[label]; ok {
		return true
	}
	if _, rest, ok := splitPerson(label); ok {
		_, ok := Abbreviations[rest]
		return ok
	}
	return false
}

// ExpandStandardAbbr returns the description of a standard abbreviation,
// expanding a person prefix ("1PL" becomes "first person plural"). The
// second return value reports whether label was recognized.
func ExpandStandardAbbr(label string) (string, bool) {
	if desc, ok := Abbreviations[label]; ok {
		return desc, true
	}
	if person, rest, ok := splitPerson(label); ok {
		if desc, ok := Abbreviations[rest]; ok {
			return person + " " + desc, true
		}
	}
	return label, false
}
