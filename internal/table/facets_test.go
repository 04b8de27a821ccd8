package table

import (
	"strings"
	"testing"

	"faersview/internal"
)

func TestStatsAndValues(t *testing.T) {
	input := "primaryid,caseid,assessor,occr_country\n" +
		"1,10,Lorrie,US\n" +
		"2,10,Sam,FR\n" +
		"3,11,Lorrie,\n" +
		"3,12,,US\n"
	tbl, err := Load("a.csv", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	stats := tbl.Stats()
	want := Stats{Total: 4, UniquePrimaryIDs: 3, UniqueCaseIDs: 3, Assessors: 2}
	if stats != want {
		t.Fatalf("stats=%+v want %+v", stats, want)
	}

	if got := tbl.Values(internal.ColAssessor); strings.Join(got, ",") != "Lorrie,Sam" {
		t.Fatalf("assessors=%v", got)
	}
	if got := tbl.Values(internal.ColOccrCountry); strings.Join(got, ",") != "FR,US" {
		t.Fatalf("countries=%v", got)
	}
	if got := tbl.Values(internal.ColNarrative); len(got) != 0 {
		t.Fatalf("absent column=%v", got)
	}

	ids := tbl.SampleIDs(3)
	if len(ids) != 3 || ids[0].PrimaryID != "1" || ids[2].CaseID != "11" {
		t.Fatalf("sample ids=%+v", ids)
	}
	if got := tbl.SampleIDs(10); len(got) != 4 {
		t.Fatalf("len=%d", len(got))
	}
}

func TestStatsSkipsNA(t *testing.T) {
	input := "primaryid,caseid,assessor\n" +
		"1,10,NA\n" +
		"2,NA,Sam\n" +
		"NA,11,\n"
	tbl, err := Load("a.csv", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := Stats{Total: 3, UniquePrimaryIDs: 2, UniqueCaseIDs: 2, Assessors: 1}
	if stats := tbl.Stats(); stats != want {
		t.Fatalf("stats=%+v want %+v", stats, want)
	}
	if got := tbl.Values(internal.ColAssessor); strings.Join(got, ",") != "Sam" {
		t.Fatalf("assessors=%v", got)
	}
}

func TestStatsMissingColumns(t *testing.T) {
	tbl, err := Load("a.csv", strings.NewReader("pt\nFall\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s := tbl.Stats(); s.Total != 1 || s.UniquePrimaryIDs != 0 || s.Assessors != 0 {
		t.Fatalf("stats=%+v", s)
	}
	ids := tbl.SampleIDs(1)
	if ids[0].PrimaryID != internal.NA {
		t.Fatalf("ids=%+v", ids)
	}
}

func TestSample(t *testing.T) {
	tbl, err := Sample()
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 1 || tbl.Source.Kind != internal.SourceSample {
		t.Fatalf("len=%d source=%+v", tbl.Len(), tbl.Source)
	}
	row := tbl.Rows[0]
	if internal.Value(row.PrimaryID) != "102854963" || internal.Value(row.CaseID) != "10285496" {
		t.Fatalf("row=%+v", row)
	}
	if internal.Value(row.RoleCode) != "PS ; SS ; SS ; SS ; C ; SS ; C" {
		t.Fatalf("role_cod=%q", internal.Value(row.RoleCode))
	}
}
