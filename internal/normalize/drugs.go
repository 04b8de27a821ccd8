package normalize

import "faersview/internal"

// BuildDrugRecords decomposes the parallel drug columns of row into one record
// per drug_seq token. drug_seq alone decides the count: a column with fewer
// tokens is padded with NA and extra tokens are dropped, so a partially
// populated row still renders.
func BuildDrugRecords(row internal.CaseRow) []internal.DrugRecord {
	sequences := SplitField(row.DrugSeq)
	roleCodes := SplitField(row.RoleCode)
	drugNames := SplitField(row.DrugName)
	productAI := SplitField(row.ProdAI)
	routes := SplitField(row.Route)
	doseAmts := SplitField(row.DoseAmt)
	doseUnits := SplitField(row.DoseUnit)
	doseForms := SplitField(row.DoseForm)
	doseFreqs := SplitField(row.DoseFreq)
	indications := SplitField(row.IndiPT)
	startDates := SplitField(row.StartDate)
	endDates := SplitField(row.EndDate)
	dechals := SplitField(row.Dechal)
	rechals := SplitField(row.Rechal)
	lotNums := SplitField(row.LotNum)

	valVBMs := SplitField(row.ValVBM)
	doseVBMs := SplitField(row.DoseVBM)
	cumDoseChrs := SplitField(row.CumDoseChr)
	cumDoseUnits := SplitField(row.CumDoseUnit)
	expDates := SplitField(row.ExpDate)
	ndaNums := SplitField(row.NDANum)
	durs := SplitField(row.Dur)
	durCodes := SplitField(row.DurCode)

	drugs := make([]internal.DrugRecord, 0, len(sequences))
	for i := range sequences {
		drugs = append(drugs, internal.DrugRecord{
			Sequence:      sequences[i],
			RoleCode:      at(roleCodes, i),
			DrugName:      at(drugNames, i),
			ProductAI:     at(productAI, i),
			Route:         at(routes, i),
			DoseAmount:    at(doseAmts, i),
			DoseUnit:      at(doseUnits, i),
			DoseForm:      at(doseForms, i),
			DoseFrequency: at(doseFreqs, i),
			Indication:    at(indications, i),
			StartDate:     at(startDates, i),
			EndDate:       at(endDates, i),
			Dechallenge:   at(dechals, i),
			Rechallenge:   at(rechals, i),
			LotNumber:     at(lotNums, i),
			ValVBM:        at(valVBMs, i),
			DoseVBM:       at(doseVBMs, i),
			CumDoseChr:    at(cumDoseChrs, i),
			CumDoseUnit:   at(cumDoseUnits, i),
			ExpDate:       at(expDates, i),
			NDANumber:     at(ndaNums, i),
			Duration:      at(durs, i),
			DurationCode:  at(durCodes, i),
		})
	}
	return drugs
}

// Reactions returns the preferred-term labels of row.
func Reactions(row internal.CaseRow) []string {
	return SplitField(row.PT)
}

// DrugNames returns the drug name of every record, in sequence order.
func DrugNames(drugs []internal.DrugRecord) []string {
	out := make([]string, 0, len(drugs))
	for _, d := range drugs {
		out = append(out, d.DrugName)
	}
	return out
}
