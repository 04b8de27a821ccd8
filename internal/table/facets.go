package table

import (
	"sort"

	"faersview/internal"
)

type Stats struct {
	Total            int `json:"total"`
	UniquePrimaryIDs int `json:"unique_primary_ids"`
	UniqueCaseIDs    int `json:"unique_case_ids"`
	Assessors        int `json:"assessors"`
}

type SampleID struct {
	PrimaryID string `json:"primary_id"`
	CaseID    string `json:"case_id"`
}

func (t *Table) Stats() Stats {
	primary := distinct(t, internal.ColPrimaryID)
	cases := distinct(t, internal.ColCaseID)
	assessors := distinct(t, internal.ColAssessor)
	return Stats{
		Total:            t.Len(),
		UniquePrimaryIDs: len(primary),
		UniqueCaseIDs:    len(cases),
		Assessors:        len(assessors),
	}
}

// SampleIDs lists the identifiers of the first n rows.
func (t *Table) SampleIDs(n int) []SampleID {
	if n > t.Len() {
		n = t.Len()
	}
	out := make([]SampleID, 0, n)
	for i := 0; i < n; i++ {
		row := t.Rows[i]
		out = append(out, SampleID{
			PrimaryID: internal.Value(row.PrimaryID),
			CaseID:    internal.Value(row.CaseID),
		})
	}
	return out
}

// distinct collects the non-missing values of a column, the way a dataframe
// nunique ignores nulls.
func distinct(t *Table, column string) map[string]struct{} {
	out := map[string]struct{}{}
	if t == nil || !t.HasColumn(column) {
		return out
	}
	for i := range t.Rows {
		if v, ok := t.Rows[i].Get(column); ok && v != internal.NA {
			out[v] = struct{}{}
		}
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Values lists the distinct non-missing values of column, sorted. These are
// the choices offered for a search filter.
func (t *Table) Values(column string) []string {
	return sortedKeys(distinct(t, column))
}
