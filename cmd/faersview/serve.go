package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"faersview/internal/exitcode"
	"faersview/internal/session"
	"faersview/internal/sheets"
	"faersview/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web viewer",
	RunE:  runServe,
}

var listenAddr string

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (default from LISTEN_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var remote web.Remote
	remoteErr := sheets.ErrNoCredentials
	if cfg.SheetsConfigured() {
		client, err := sheets.NewClient(ctx, cfg)
		if err != nil {
			log.Error().Err(err).Msg("google sheets disabled")
			remoteErr = err
		} else {
			remote = sheets.NewCachedSource(client, cfg.SheetsCacheTTL)
			remoteErr = nil
		}
	} else {
		log.Info().Msg("google sheets credentials not configured, sheet loading disabled")
	}

	// Sessions idle for a day are dropped.
	srv, err := web.New(cfg, log, session.NewStore(24*time.Hour), remote, remoteErr)
	must(err, exitcode.UsageError, "build server")

	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		must(err, exitcode.UsageError, "server stopped")
	}
	log.Info().Msg("server stopped")
	return nil
}
