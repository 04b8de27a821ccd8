package internal

import "time"

// NA is the display sentinel for a value that is absent from the source row.
const NA = "NA"

type SourceKind string

const (
	SourceFile         SourceKind = "file_upload"
	SourceSample       SourceKind = "sample"
	SourceGoogleSheets SourceKind = "google_sheets"
)

type TableSource struct {
	Kind     SourceKind
	Name     string
	LoadedAt time.Time
}

// CaseRow is one adverse-event report. A nil field means the column was
// absent from the input or the cell was empty.
type CaseRow struct {
	DateAssignment  *string
	Assessor        *string
	Status          *string
	PrimaryID       *string
	CaseID          *string
	CaseVersion     *string
	IFCode          *string
	EventDate       *string
	MfrDate         *string
	InitFDADate     *string
	FDADate         *string
	ReptCode        *string
	AuthNum         *string
	MfrNum          *string
	MfrSender       *string
	LitRef          *string
	Age             *string
	AgeCode         *string
	AgeGroup        *string
	Sex             *string
	ESub            *string
	Weight          *string
	WeightCode      *string
	ReptDate        *string
	ToMfr           *string
	OccpCode        *string
	ReporterCountry *string
	OccrCountry     *string
	PT              *string
	Narrative       *string
	NarrativeClean  *string

	// Parallel multi-value drug columns, aligned by position with DrugSeq.
	DrugSeq     *string
	RoleCode    *string
	DrugName    *string
	ProdAI      *string
	ValVBM      *string
	Route       *string
	DoseVBM     *string
	CumDoseChr  *string
	CumDoseUnit *string
	Dechal      *string
	Rechal      *string
	LotNum      *string
	ExpDate     *string
	NDANum      *string
	DoseAmt     *string
	DoseUnit    *string
	DoseForm    *string
	DoseFreq    *string
	StartDate   *string
	EndDate     *string
	Dur         *string
	DurCode     *string
	IndiPT      *string
}

type RoleCode string

const (
	RolePrimarySuspect   RoleCode = "PS"
	RoleSecondarySuspect RoleCode = "SS"
	RoleConcomitant      RoleCode = "C"
	RoleInteracting      RoleCode = "I"
)

type DrugRecord struct {
	Sequence      string `json:"sequence"`
	RoleCode      string `json:"role_code"`
	DrugName      string `json:"drug_name"`
	ProductAI     string `json:"product_ai"`
	Route         string `json:"route"`
	DoseAmount    string `json:"dose_amount"`
	DoseUnit      string `json:"dose_unit"`
	DoseForm      string `json:"dose_form"`
	DoseFrequency string `json:"dose_frequency"`
	Indication    string `json:"indication"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Dechallenge   string `json:"dechallenge"`
	Rechallenge   string `json:"rechallenge"`
	LotNumber     string `json:"lot_number"`
	ValVBM        string `json:"val_vbm"`
	DoseVBM       string `json:"dose_vbm"`
	CumDoseChr    string `json:"cum_dose_chr"`
	CumDoseUnit   string `json:"cum_dose_unit"`
	ExpDate       string `json:"exp_dt"`
	NDANumber     string `json:"nda_num"`
	Duration      string `json:"duration"`
	DurationCode  string `json:"duration_code"`
}

type Outcome string

const (
	OutcomeNone          Outcome = ""
	OutcomeRelated       Outcome = "Related"
	OutcomeNotRelated    Outcome = "Not Related"
	OutcomeIndeterminate Outcome = "Indeterminate"
	OutcomeUnlikely      Outcome = "Unlikely"
)

var Outcomes = []Outcome{OutcomeRelated, OutcomeNotRelated, OutcomeIndeterminate, OutcomeUnlikely}

// QuestionCount is the number of scored questions on the assessment form.
const QuestionCount = 10

type Question struct {
	Score     int
	Reasoning string
}

type Assessment struct {
	PrimaryID   string
	CaseID      string
	PTs         []string
	DrugNames   []string
	Questions   [QuestionCount]Question
	FinalScore  int
	Outcome     Outcome
	Description string
	Narrative   string
}

// Value resolves an optional field for display, defaulting to NA.
func Value(v *string) string {
	if v == nil || *v == "" {
		return NA
	}
	return *v
}

// Raw resolves an optional field to its cell text, defaulting to "".
func Raw(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
