package file

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRowIGT(t *testing.T) {
	r := Row{
		ID:          "1",
		Phrase:      `zep-le:\tme-ku`,
		Gloss:       `earth-DEF:CL\tNEG-one`,
		Translation: "the earth is not one",
		Language:    "abc",
	}
	x := r.IGT()
	if len(x.Phrase) != 2 || x.Phrase[0] != "zep-le:" {
		t.Fatalf("phrase = %#v", x.Phrase)
	}
	if x.Language != "abc" || x.Translation != "the earth is not one" {
		t.Fatalf("meta = %q, %q", x.Language, x.Translation)
	}
}

func TestRowIGTFreeText(t *testing.T) {
	r := Row{ID: "1", Phrase: "a-nii -laay b", Gloss: "3SG-laugh-FUT c"}
	x := r.IGT()
	if len(x.Phrase) != 2 || x.Phrase[0] != "a-nii -laay" {
		t.Fatalf("phrase = %#v", x.Phrase)
	}
}

func TestRowsRoundTrip(t *testing.T) {
	rows := []Row{
		{ID: "1", Phrase: "a-b", Gloss: "A-B", Properties: map[string]string{"SOURCE": "x"}},
		{ID: "2", Phrase: "c", Gloss: "C", Translation: "c it is"},
	}
	path := filepath.Join(t.TempDir(), "rows.json")
	if err := WriteRows(path, rows); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRows(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Properties["SOURCE"] != "x" || got[1].Translation != "c it is" {
		t.Fatalf("rows = %#v", got)
	}
}

func TestReadTSV(t *testing.T) {
	data := "ID\tPHRASE\tGLOSS\tTRANSLATION\tSOURCE\n" +
		"1\ta-b c\tA-B C\tthe thing\tSmith 1999\n" +
		"\n" +
		"2\td\tD\t\t\n"
	rows, err := ReadTSV(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0].Properties["SOURCE"] != "Smith 1999" {
		t.Fatalf("properties = %#v", rows[0].Properties)
	}
	if rows[1].Translation != "" || rows[1].Properties != nil {
		t.Fatalf("row 2 = %#v", rows[1])
	}
}

func TestReadTSVMissingColumn(t *testing.T) {
	if _, err := ReadTSV(strings.NewReader("ID\tPHRASE\n1\ta\n")); err == nil {
		t.Fatal("missing GLOSS column accepted")
	}
}
