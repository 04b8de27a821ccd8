package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"faersview/internal/exitcode"
	"faersview/internal/sheets"
)

var (
	sheetURL    string
	sheetSearch searchFlags
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Fetch a Google Sheet and summarize it or show one case",
	Long:  "Fetch the first worksheet of a Google Sheet using service-account credentials from GOOGLE_SHEETS_CREDENTIALS_FILE or GOOGLE_SHEETS_CREDENTIALS_JSON.",
	RunE:  runSheet,
}

func init() {
	sheetCmd.Flags().StringVar(&sheetURL, "url", "", "Sheet URL or ID (default from GOOGLE_SHEETS_DEFAULT_URL)")
	sheetSearch.register(sheetCmd)
	rootCmd.AddCommand(sheetCmd)
}

func runSheet(cmd *cobra.Command, args []string) error {
	if sheetURL == "" {
		sheetURL = cfg.SheetsDefaultURL
	}
	must(cfg.Require("--url or GOOGLE_SHEETS_DEFAULT_URL", sheetURL), exitcode.UsageError, "missing sheet url")

	ctx := context.Background()
	client, err := sheets.NewClient(ctx, cfg)
	if errors.Is(err, sheets.ErrNoCredentials) {
		must(err, exitcode.UsageError, "sheets not configured")
	}
	must(err, exitcode.RemoteError, "create sheets client")

	t, err := client.Fetch(ctx, sheetURL)
	must(err, exitcode.RemoteError, "fetch sheet")
	log.Info().Str("url", sheetURL).Int("rows", t.Len()).Msg("sheet loaded")

	if sheetSearch.set() {
		showCase(cmd.OutOrStdout(), t, &sheetSearch)
		return nil
	}
	printStats(cmd.OutOrStdout(), t)
	return nil
}
