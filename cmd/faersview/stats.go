package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"faersview/internal/exitcode"
	"faersview/internal/table"
)

var statsFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a local export",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFile, "file", "", "Path to a CSV, TSV or XLSX export (default: built-in sample)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	t, err := openTable(statsFile)
	must(err, exitcode.LoadError, "load table")
	printStats(cmd.OutOrStdout(), t)
	return nil
}

func printStats(w io.Writer, t *table.Table) {
	st := t.Stats()
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Metric", "Value"})
	tw.Append([]string{"Source", fmt.Sprintf("%s (%s)", t.Source.Name, t.Source.Kind)})
	tw.Append([]string{"Total Cases", humanize.Comma(int64(st.Total))})
	tw.Append([]string{"Unique Primary IDs", humanize.Comma(int64(st.UniquePrimaryIDs))})
	tw.Append([]string{"Unique Case IDs", humanize.Comma(int64(st.UniqueCaseIDs))})
	tw.Append([]string{"Assessors", humanize.Comma(int64(st.Assessors))})
	for _, column := range cfg.FilterColumns {
		if t.HasColumn(column) {
			tw.Append([]string{column, strings.Join(t.Values(column), ", ")})
		}
	}
	tw.Render()

	ids := t.SampleIDs(3)
	if len(ids) == 0 {
		return
	}
	fmt.Fprintln(w, "\nSample IDs:")
	for _, id := range ids {
		fmt.Fprintf(w, "  primaryid=%s caseid=%s\n", id.PrimaryID, id.CaseID)
	}
}
