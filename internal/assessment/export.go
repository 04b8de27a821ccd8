package assessment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"faersview/internal"
)

const listSeparator = "; "

// Header is the column layout of an exported assessment.
func Header() []string {
	h := []string{"case", "case_id", "pt", "drug_name"}
	for i := 1; i <= internal.QuestionCount; i++ {
		h = append(h, fmt.Sprintf("q%d_score", i))
	}
	for i := 1; i <= internal.QuestionCount; i++ {
		h = append(h, fmt.Sprintf("q%d_reasoning", i))
	}
	return append(h, "final_score", "outcome", "description", "case_narrative")
}

// Record flattens a into one row matching Header.
func Record(a internal.Assessment) []string {
	r := []string{
		a.PrimaryID,
		a.CaseID,
		strings.Join(a.PTs, listSeparator),
		strings.Join(a.DrugNames, listSeparator),
	}
	for _, q := range a.Questions {
		r = append(r, strconv.Itoa(q.Score))
	}
	for _, q := range a.Questions {
		r = append(r, q.Reasoning)
	}
	return append(r, strconv.Itoa(a.FinalScore), string(a.Outcome), a.Description, a.Narrative)
}

func WriteCSV(w io.Writer, a internal.Assessment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	if err := cw.Write(Record(a)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same header and row as a single-sheet workbook. Score
// columns are stored as numbers.
func WriteXLSX(w io.Writer, a internal.Assessment) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range Header() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	set := func(col int, value any) {
		cell, _ := excelize.CoordinatesToCellName(col, 2)
		_ = f.SetCellValue(sheet, cell, value)
	}
	for i, v := range Record(a) {
		set(i+1, v)
	}
	for i, q := range a.Questions {
		set(5+i, q.Score)
	}
	set(5+2*internal.QuestionCount, a.FinalScore)

	_, err := f.WriteTo(w)
	return err
}

// FileName is the suggested download name for an export.
func FileName(a internal.Assessment, ext string) string {
	id := a.CaseID
	if id == "" {
		id = a.PrimaryID
	}
	if id == "" {
		id = "case"
	}
	return fmt.Sprintf("assessment_%s.%s", sanitize(id), ext)
}

func sanitize(input string) string {
	repl := strings.NewReplacer("<", "_", ">", "_", ":", "_", "/", "_", "\\", "_", "|", "_", "?", "_", "*", "_", " ", "_", "\"", "_")
	out := repl.Replace(input)
	if len(out) > 120 {
		out = out[:120]
	}
	return out
}
