package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"faersview/internal/config"
	"faersview/internal/exitcode"
	"faersview/internal/logging"
	"faersview/internal/table"
)

var (
	cfg config.Config
	log zerolog.Logger

	configPath string
	logFormat  string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "faersview",
	Short: "FAERS adverse-event case viewer",
	Long:  "Loads FAERS case exports (CSV, TSV, XLSX or Google Sheets), shows individual cases and exports causality assessments.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := resolveConfig(cmd)
		must(err, exitcode.ValidationError, "invalid configuration")
		cfg = loaded
		log = logging.Setup(cfg.LogFormat, cfg.LogLevel)
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Optional YAML config file")
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}

// resolveConfig layers the environment, the optional YAML file and the
// logging flags, then validates the result.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if configPath != "" {
		if err := c.LoadFromFile(configPath); err != nil {
			return config.Config{}, err
		}
	}
	if cmd.Flags().Changed("log-format") {
		c.LogFormat = logFormat
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = logLevel
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}
	return c, nil
}

// openTable loads a local export, or the built-in sample when path is empty.
func openTable(path string) (*table.Table, error) {
	if path == "" {
		return table.Sample()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return table.Load(path, f)
}

func must(err error, code int, msg string) {
	if err == nil {
		return
	}
	log.Error().Err(err).Msg(msg)
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(code)
}
