package internal

// Recognized column names, as they appear in the export header.
const (
	ColDateAssignment  = "date_assignement"
	ColAssessor        = "assessor"
	ColStatus          = "status"
	ColPrimaryID       = "primaryid"
	ColCaseID          = "caseid"
	ColCaseVersion     = "caseversion"
	ColIFCode          = "i_f_code"
	ColEventDate       = "event_dt"
	ColMfrDate         = "mfr_dt"
	ColInitFDADate     = "init_fda_dt"
	ColFDADate         = "fda_dt"
	ColReptCode        = "rept_cod"
	ColAuthNum         = "auth_num"
	ColMfrNum          = "mfr_num"
	ColMfrSender       = "mfr_sndr"
	ColLitRef          = "lit_ref"
	ColAge             = "age"
	ColAgeCode         = "age_cod"
	ColAgeGroup        = "age_grp"
	ColSex             = "sex"
	ColESub            = "e_sub"
	ColWeight          = "wt"
	ColWeightCode      = "wt_cod"
	ColReptDate        = "rept_dt"
	ColToMfr           = "to_mfr"
	ColOccpCode        = "occp_cod"
	ColReporterCountry = "reporter_country"
	ColOccrCountry     = "occr_country"
	ColPT              = "pt"
	ColNarrative       = "narrative"
	ColNarrativeClean  = "narrative_clean"

	ColDrugSeq     = "drug_seq"
	ColRoleCode    = "role_cod"
	ColDrugName    = "drugname"
	ColProdAI      = "prod_ai"
	ColValVBM      = "val_vbm"
	ColRoute       = "route"
	ColDoseVBM     = "dose_vbm"
	ColCumDoseChr  = "cum_dose_chr"
	ColCumDoseUnit = "cum_dose_unit"
	ColDechal      = "dechal"
	ColRechal      = "rechal"
	ColLotNum      = "lot_num"
	ColExpDate     = "exp_dt"
	ColNDANum      = "nda_num"
	ColDoseAmt     = "dose_amt"
	ColDoseUnit    = "dose_unit"
	ColDoseForm    = "dose_form"
	ColDoseFreq    = "dose_freq"
	ColStartDate   = "start_dt"
	ColEndDate     = "end_dt"
	ColDur         = "dur"
	ColDurCode     = "dur_cod"
	ColIndiPT      = "indi_pt"
)

var columnFields = map[string]func(*CaseRow) **string{
	ColDateAssignment:  func(r *CaseRow) **string { return &r.DateAssignment },
	ColAssessor:        func(r *CaseRow) **string { return &r.Assessor },
	ColStatus:          func(r *CaseRow) **string { return &r.Status },
	ColPrimaryID:       func(r *CaseRow) **string { return &r.PrimaryID },
	ColCaseID:          func(r *CaseRow) **string { return &r.CaseID },
	ColCaseVersion:     func(r *CaseRow) **string { return &r.CaseVersion },
	ColIFCode:          func(r *CaseRow) **string { return &r.IFCode },
	ColEventDate:       func(r *CaseRow) **string { return &r.EventDate },
	ColMfrDate:         func(r *CaseRow) **string { return &r.MfrDate },
	ColInitFDADate:     func(r *CaseRow) **string { return &r.InitFDADate },
	ColFDADate:         func(r *CaseRow) **string { return &r.FDADate },
	ColReptCode:        func(r *CaseRow) **string { return &r.ReptCode },
	ColAuthNum:         func(r *CaseRow) **string { return &r.AuthNum },
	ColMfrNum:          func(r *CaseRow) **string { return &r.MfrNum },
	ColMfrSender:       func(r *CaseRow) **string { return &r.MfrSender },
	ColLitRef:          func(r *CaseRow) **string { return &r.LitRef },
	ColAge:             func(r *CaseRow) **string { return &r.Age },
	ColAgeCode:         func(r *CaseRow) **string { return &r.AgeCode },
	ColAgeGroup:        func(r *CaseRow) **string { return &r.AgeGroup },
	ColSex:             func(r *CaseRow) **string { return &r.Sex },
	ColESub:            func(r *CaseRow) **string { return &r.ESub },
	ColWeight:          func(r *CaseRow) **string { return &r.Weight },
	ColWeightCode:      func(r *CaseRow) **string { return &r.WeightCode },
	ColReptDate:        func(r *CaseRow) **string { return &r.ReptDate },
	ColToMfr:           func(r *CaseRow) **string { return &r.ToMfr },
	ColOccpCode:        func(r *CaseRow) **string { return &r.OccpCode },
	ColReporterCountry: func(r *CaseRow) **string { return &r.ReporterCountry },
	ColOccrCountry:     func(r *CaseRow) **string { return &r.OccrCountry },
	ColPT:              func(r *CaseRow) **string { return &r.PT },
	ColNarrative:       func(r *CaseRow) **string { return &r.Narrative },
	ColNarrativeClean:  func(r *CaseRow) **string { return &r.NarrativeClean },

	ColDrugSeq:     func(r *CaseRow) **string { return &r.DrugSeq },
	ColRoleCode:    func(r *CaseRow) **string { return &r.RoleCode },
	ColDrugName:    func(r *CaseRow) **string { return &r.DrugName },
	ColProdAI:      func(r *CaseRow) **string { return &r.ProdAI },
	ColValVBM:      func(r *CaseRow) **string { return &r.ValVBM },
	ColRoute:       func(r *CaseRow) **string { return &r.Route },
	ColDoseVBM:     func(r *CaseRow) **string { return &r.DoseVBM },
	ColCumDoseChr:  func(r *CaseRow) **string { return &r.CumDoseChr },
	ColCumDoseUnit: func(r *CaseRow) **string { return &r.CumDoseUnit },
	ColDechal:      func(r *CaseRow) **string { return &r.Dechal },
	ColRechal:      func(r *CaseRow) **string { return &r.Rechal },
	ColLotNum:      func(r *CaseRow) **string { return &r.LotNum },
	ColExpDate:     func(r *CaseRow) **string { return &r.ExpDate },
	ColNDANum:      func(r *CaseRow) **string { return &r.NDANum },
	ColDoseAmt:     func(r *CaseRow) **string { return &r.DoseAmt },
	ColDoseUnit:    func(r *CaseRow) **string { return &r.DoseUnit },
	ColDoseForm:    func(r *CaseRow) **string { return &r.DoseForm },
	ColDoseFreq:    func(r *CaseRow) **string { return &r.DoseFreq },
	ColStartDate:   func(r *CaseRow) **string { return &r.StartDate },
	ColEndDate:     func(r *CaseRow) **string { return &r.EndDate },
	ColDur:         func(r *CaseRow) **string { return &r.Dur },
	ColDurCode:     func(r *CaseRow) **string { return &r.DurCode },
	ColIndiPT:      func(r *CaseRow) **string { return &r.IndiPT },
}

// IsColumn reports whether name is a recognized column.
func IsColumn(name string) bool {
	_, ok := columnFields[name]
	return ok
}

// Set assigns a cell to its column. Unrecognized columns and empty cells are
// ignored, leaving the field nil.
func (r *CaseRow) Set(column, value string) {
	field, ok := columnFields[column]
	if !ok || value == "" {
		return
	}
	v := value
	*field(r) = &v
}

// Get returns the raw cell text for column and whether the column holds a value.
func (r *CaseRow) Get(column string) (string, bool) {
	field, ok := columnFields[column]
	if !ok {
		return "", false
	}
	p := *field(r)
	if p == nil {
		return "", false
	}
	return *p, true
}
