package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"faersview/internal/caseview"
	"faersview/internal/exitcode"
	"faersview/internal/locate"
	"faersview/internal/table"
)

type searchFlags struct {
	primaryID string
	caseID    string
	filters   map[string]string
	asJSON    bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.primaryID, "primaryid", "", "Primary ID to show")
	fl.StringVar(&f.caseID, "caseid", "", "Case ID to show (used when --primaryid is empty)")
	fl.StringToStringVar(&f.filters, "filter", nil, "Column filters, e.g. --filter assessor=Lorrie")
	fl.BoolVar(&f.asJSON, "json", false, "Print the case as JSON")
}

func (f *searchFlags) set() bool {
	return f.primaryID != "" || f.caseID != ""
}

func (f *searchFlags) find(t *table.Table) (locate.Result, error) {
	if f.primaryID != "" {
		return locate.Find(t, f.primaryID, locate.ByPrimaryID, f.filters)
	}
	return locate.Find(t, f.caseID, locate.ByCaseID, f.filters)
}

var (
	showFile   string
	showSearch searchFlags
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print one case from a local export",
	Long:  "Print one case from a CSV, TSV or XLSX export. Without --file the built-in sample is used.",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFile, "file", "", "Path to a CSV, TSV or XLSX export")
	showSearch.register(showCmd)
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := openTable(showFile)
	must(err, exitcode.LoadError, "load table")
	showCase(cmd.OutOrStdout(), t, &showSearch)
	return nil
}

func showCase(w io.Writer, t *table.Table, f *searchFlags) {
	res, err := f.find(t)
	if errors.Is(err, locate.ErrEmptyKey) {
		must(err, exitcode.UsageError, "find case")
	}
	must(err, exitcode.NotFound, "find case")
	if res.Ambiguous() {
		log.Warn().Int("matches", res.Matches).Msg("several cases match, showing the first")
	}
	v := caseview.Build(res.Row)
	if f.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		must(enc.Encode(v), exitcode.UsageError, "encode case")
		return
	}
	printCase(w, v)
}

func printCase(w io.Writer, v caseview.View) {
	fmt.Fprintf(w, "Case %s (primary ID %s)\n\n", v.CaseID, v.PrimaryID)

	fields := tablewriter.NewWriter(w)
	fields.SetHeader([]string{"Field", "Value"})
	fields.SetAutoWrapText(false)
	for _, row := range v.Admin {
		for _, f := range row {
			fields.Append([]string{f.Label, f.Value})
		}
	}
	for _, f := range v.Demographics {
		fields.Append([]string{f.Label, f.Value})
	}
	fields.Render()

	fmt.Fprintf(w, "\nReactions: %d\n", len(v.Reactions))
	for _, r := range v.Reactions {
		fmt.Fprintf(w, "  - %s\n", r)
	}

	fmt.Fprintf(w, "\nDrugs: %d\n", len(v.Drugs))
	drugs := tablewriter.NewWriter(w)
	drugs.SetHeader([]string{"Seq", "Role", "Drug", "Route", "Dose", "Start", "End", "Indication"})
	for _, d := range v.Drugs {
		drugs.Append([]string{d.Sequence, d.RoleLabel, d.DrugName, d.Route, d.Dosing[0].Value, d.StartDate, d.EndDate, d.Indication})
	}
	drugs.Render()

	if v.ShowNarrative() {
		fmt.Fprintf(w, "\nNarrative:\n%s\n", v.Narrative)
	}
	if v.ShowNarrativeClean() {
		fmt.Fprintf(w, "\nCleaned narrative:\n%s\n", v.NarrativeClean)
	}
}
