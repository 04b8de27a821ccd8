package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"faersview/internal"
)

func mkXLSX(rows [][]any) []byte {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	buf := bytes.NewBuffer(nil)
	_, _ = f.WriteTo(buf)
	return buf.Bytes()
}

func TestLoadCSV(t *testing.T) {
	input := "primaryid,caseid,assessor,drug_seq,extra_col\n" +
		"1001,11,Lorrie,1 ; 2,ignored\n" +
		"1002,12,,NA,\n"
	tbl, err := Load("cases.csv", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("len=%d", tbl.Len())
	}
	if tbl.Source.Kind != internal.SourceFile || tbl.Source.Name != "cases.csv" {
		t.Fatalf("source=%+v", tbl.Source)
	}
	first := tbl.Rows[0]
	if internal.Value(first.PrimaryID) != "1001" || internal.Value(first.DrugSeq) != "1 ; 2" {
		t.Fatalf("first row: %+v", first)
	}
	if tbl.Rows[1].Assessor != nil {
		t.Fatalf("empty cell should be nil")
	}
	if internal.Value(tbl.Rows[1].Assessor) != internal.NA {
		t.Fatalf("missing assessor should display NA")
	}
	if tbl.Rows[0].Narrative != nil {
		t.Fatalf("absent column should be nil")
	}
}

func TestLoadTSV(t *testing.T) {
	input := "primaryid\tcaseid\tpt\n1001\t11\tFall ; Alopecia\n"
	for _, name := range []string{"cases.tsv", "cases.txt"} {
		tbl, err := Load(name, strings.NewReader(input))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if internal.Value(tbl.Rows[0].PT) != "Fall ; Alopecia" {
			t.Fatalf("%s: pt=%q", name, internal.Value(tbl.Rows[0].PT))
		}
	}
}

func TestLoadStripsBOMAndNormalizesHeader(t *testing.T) {
	input := "\xEF\xBB\xBFPrimaryID , CaseID\n1001,11\n"
	tbl, err := Load("cases.csv", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if !tbl.HasColumn(internal.ColPrimaryID) || internal.Value(tbl.Rows[0].CaseID) != "11" {
		t.Fatalf("header=%v rows=%+v", tbl.Header, tbl.Rows)
	}
}

func TestLoadShortRowsAreMissingNotErrors(t *testing.T) {
	input := "primaryid,caseid,pt\n1001\n"
	tbl, err := Load("cases.csv", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Rows[0].CaseID != nil || tbl.Rows[0].PT != nil {
		t.Fatalf("short row should leave fields nil")
	}
}

func TestLoadMalformed(t *testing.T) {
	cases := []struct {
		name  string
		file  string
		input string
	}{
		{name: "empty", file: "a.csv", input: ""},
		{name: "wide row", file: "a.csv", input: "primaryid,caseid\n1,2,3\n"},
		{name: "duplicate header", file: "a.csv", input: "primaryid,PrimaryID\n1,2\n"},
		{name: "bad quotes", file: "a.csv", input: "primaryid,caseid\n\"1,2\n"},
		{name: "tsv read as csv", file: "a.csv", input: "primaryid\tcaseid\n1\t2\n"},
		{name: "csv read as tsv", file: "a.tsv", input: "primaryid,caseid\n1,2\n"},
		{name: "not utf8", file: "a.csv", input: "primaryid,caseid\n1,\xff\xfe\n"},
		{name: "not a workbook", file: "a.xlsx", input: "primaryid,caseid\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := Load(tc.file, strings.NewReader(tc.input))
			if err == nil {
				t.Fatalf("expected error, got table with %d rows", tbl.Len())
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error %v is not ErrMalformed", err)
			}
			if tbl != nil {
				t.Fatalf("no partial table may be returned")
			}
		})
	}
}

func TestLoadXLSX(t *testing.T) {
	blob := mkXLSX([][]any{
		{"primaryid", "caseid", "occr_country"},
		{"102854963", "10285496", "US"},
		{"", "", ""},
		{"102854964", "10285497", "FR"},
	})
	tbl, err := Load("cases.xlsx", bytes.NewReader(blob))
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("len=%d", tbl.Len())
	}
	if internal.Value(tbl.Rows[1].OccrCountry) != "FR" {
		t.Fatalf("row=%+v", tbl.Rows[1])
	}
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]Format{
		"a.csv":  FormatCSV,
		"a.CSV":  FormatCSV,
		"a.tsv":  FormatTSV,
		"a.txt":  FormatTSV,
		"a.xlsx": FormatXLSX,
		"a":      FormatCSV,
	}
	for name, want := range cases {
		if got := DetectFormat(name); got != want {
			t.Fatalf("DetectFormat(%q)=%s want %s", name, got, want)
		}
	}
}
