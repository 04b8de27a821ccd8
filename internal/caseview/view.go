package caseview

import (
	"strings"

	"faersview/internal"
	"faersview/internal/normalize"
	"faersview/internal/util"
)

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Drug is a drug record with its display attributes resolved.
type Drug struct {
	internal.DrugRecord
	RoleLabel string `json:"role_label"`
	RoleClass string `json:"role_class"`

	Basic     []Field `json:"basic"`
	Dosing    []Field `json:"dosing"`
	Timeline  []Field `json:"timeline"`
	Challenge []Field `json:"challenge"`
}

type View struct {
	PrimaryID string `json:"primary_id"`
	CaseID    string `json:"case_id"`

	Admin        [][]Field `json:"admin"`
	Demographics []Field   `json:"demographics"`
	Reactions    []string  `json:"reactions"`
	Drugs        []Drug    `json:"drugs"`

	Narrative      string `json:"narrative,omitempty"`
	NarrativeClean string `json:"narrative_clean,omitempty"`
}

// ShowNarrative reports whether the narrative section is rendered.
func (v View) ShowNarrative() bool {
	return v.Narrative != ""
}

func (v View) ShowNarrativeClean() bool {
	return v.NarrativeClean != ""
}

func Build(row internal.CaseRow) View {
	v := View{
		PrimaryID: internal.Value(row.PrimaryID),
		CaseID:    internal.Value(row.CaseID),
		Admin:     adminRows(row),
		Demographics: []Field{
			{"Age", withUnit(row.Age, row.AgeCode)},
			{"Age Group", internal.Value(row.AgeGroup)},
			{"Sex", internal.Value(row.Sex)},
			{"Weight", withUnit(row.Weight, row.WeightCode)},
			{"E-Sub", internal.Value(row.ESub)},
			{"Occupation Code", internal.Value(row.OccpCode)},
		},
		Reactions: normalize.Reactions(row),
	}

	for _, rec := range normalize.BuildDrugRecords(row) {
		v.Drugs = append(v.Drugs, drug(rec))
	}

	narrative := present(row.Narrative)
	if narrative != "" {
		v.Narrative = narrative
	}
	// The cleaned narrative is only worth showing when cleaning changed it.
	if clean := present(row.NarrativeClean); clean != "" && clean != internal.Raw(row.Narrative) {
		v.NarrativeClean = clean
	}
	return v
}

func adminRows(row internal.CaseRow) [][]Field {
	return [][]Field{
		{
			{"Case ID", internal.Value(row.CaseID)},
			{"Primary ID", internal.Value(row.PrimaryID)},
			{"Case Version", internal.Value(row.CaseVersion)},
			{"Status", internal.Value(row.Status)},
			{"I/F Code", internal.Value(row.IFCode)},
		},
		{
			{"Assignment Date", date(row.DateAssignment)},
			{"Event Date", date(row.EventDate)},
			{"Manufacturer Date", date(row.MfrDate)},
			{"Initial FDA Date", date(row.InitFDADate)},
			{"FDA Date", date(row.FDADate)},
		},
		{
			{"Report Date", date(row.ReptDate)},
			{"Report Code", internal.Value(row.ReptCode)},
			{"To Manufacturer", internal.Value(row.ToMfr)},
			{"Assessor", internal.Value(row.Assessor)},
			{"Reporter Country", internal.Value(row.ReporterCountry)},
		},
		{
			{"Manufacturer Number", internal.Value(row.MfrNum)},
			{"Manufacturer Sender", internal.Value(row.MfrSender)},
			{"Authorization Number", internal.Value(row.AuthNum)},
			{"Literature Reference", internal.Value(row.LitRef)},
			{"Occurrence Country", internal.Value(row.OccrCountry)},
		},
	}
}

func drug(rec internal.DrugRecord) Drug {
	rec.StartDate = normalize.CanonicalizeDate(rec.StartDate)
	rec.EndDate = normalize.CanonicalizeDate(rec.EndDate)
	rec.ExpDate = normalize.CanonicalizeDate(rec.ExpDate)
	return Drug{
		DrugRecord: rec,
		RoleLabel:  normalize.RoleLabel(rec.RoleCode),
		RoleClass:  normalize.RoleClass(rec.RoleCode),
		Basic: []Field{
			{"Product/Active Ingredient", rec.ProductAI},
			{"Indication", rec.Indication},
			{"Route", rec.Route},
			{"VAL VBM", rec.ValVBM},
		},
		Dosing: []Field{
			{"Dose", unitPair(rec.DoseAmount, rec.DoseUnit)},
			{"Dose Form", rec.DoseForm},
			{"Dose Frequency", rec.DoseFrequency},
			{"Dose VBM", rec.DoseVBM},
			{"Cumulative Dose", unitPair(rec.CumDoseChr, rec.CumDoseUnit)},
		},
		Timeline: []Field{
			{"Start Date", rec.StartDate},
			{"End Date", rec.EndDate},
			{"Duration", unitPair(rec.Duration, rec.DurationCode)},
			{"Expiration Date", rec.ExpDate},
			{"Lot Number", rec.LotNumber},
		},
		Challenge: []Field{
			{"Dechallenge", rec.Dechallenge},
			{"Rechallenge", rec.Rechallenge},
			{"NDA Number", rec.NDANumber},
			{"Sequence", rec.Sequence},
		},
	}
}

func date(p *string) string {
	return normalize.CanonicalizeDate(internal.Value(p))
}

// withUnit renders "58 YR". A missing value shows as NA, a missing unit is left out.
func withUnit(value, unit *string) string {
	return util.JoinDisplay(internal.Value(value), internal.Raw(unit))
}

// unitPair joins two drug attributes that are already NA-padded. A lone NA
// unit is dropped so "5 NA" reads "5".
func unitPair(value, unit string) string {
	if unit == internal.NA {
		unit = ""
	}
	return util.JoinDisplay(value, unit)
}

// present returns the text of p unless it is missing, blank or NA.
func present(p *string) string {
	s := internal.Raw(p)
	if t := strings.TrimSpace(s); t == "" || t == internal.NA {
		return ""
	}
	return s
}
