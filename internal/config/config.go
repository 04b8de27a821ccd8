package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"faersview/internal"
)

type Config struct {
	ListenAddr string
	LogFormat  string // "text" or "json"
	LogLevel   string

	MaxUploadMB int

	SheetsCredentialsFile string
	SheetsCredentialsJSON string
	SheetsDefaultURL      string
	SheetsCacheTTL        time.Duration

	// FilterColumns are the columns offered as advanced search filters.
	FilterColumns []string
}

// yamlConfig is the optional on-disk overlay. Secrets are not read from it.
type yamlConfig struct {
	ListenAddr       string   `yaml:"listen_addr"`
	LogFormat        string   `yaml:"log_format"`
	MaxUploadMB      int      `yaml:"max_upload_mb"`
	SheetsDefaultURL string   `yaml:"sheets_default_url"`
	SheetsCacheTTL   string   `yaml:"sheets_cache_ttl"`
	FilterColumns    []string `yaml:"filter_columns"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 64),

		SheetsCredentialsFile: getEnv("GOOGLE_SHEETS_CREDENTIALS_FILE", ""),
		SheetsCredentialsJSON: getEnv("GOOGLE_SHEETS_CREDENTIALS_JSON", ""),
		SheetsDefaultURL:      getEnv("GOOGLE_SHEETS_DEFAULT_URL", ""),
		SheetsCacheTTL:        getEnvDuration("SHEETS_CACHE_TTL", 10*time.Minute),

		FilterColumns: getEnvList("FILTER_COLUMNS", []string{"assessor", "occr_country"}),
	}

	return cfg, nil
}

// LoadFromFile merges a YAML overlay into c. Only keys present in the file
// replace the current values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if yc.ListenAddr != "" {
		c.ListenAddr = yc.ListenAddr
	}
	if yc.LogFormat != "" {
		c.LogFormat = yc.LogFormat
	}
	if yc.MaxUploadMB > 0 {
		c.MaxUploadMB = yc.MaxUploadMB
	}
	if yc.SheetsDefaultURL != "" {
		c.SheetsDefaultURL = yc.SheetsDefaultURL
	}
	if yc.SheetsCacheTTL != "" {
		ttl, err := time.ParseDuration(yc.SheetsCacheTTL)
		if err != nil {
			return fmt.Errorf("parse sheets_cache_ttl: %w", err)
		}
		c.SheetsCacheTTL = ttl
	}
	if len(yc.FilterColumns) > 0 {
		c.FilterColumns = yc.FilterColumns
	}
	return c.Validate()
}

// Validate checks values that would otherwise fail later at request time.
func (c Config) Validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	if c.SheetsCacheTTL <= 0 {
		return fmt.Errorf("sheets cache ttl must be positive, got %s", c.SheetsCacheTTL)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", c.MaxUploadMB)
	}
	for _, column := range c.FilterColumns {
		if !internal.IsColumn(column) {
			return fmt.Errorf("unknown filter column %q", column)
		}
	}
	return nil
}

// SheetsConfigured reports whether credentials for the remote source exist.
func (c Config) SheetsConfigured() bool {
	return strings.TrimSpace(c.SheetsCredentialsFile) != "" || strings.TrimSpace(c.SheetsCredentialsJSON) != ""
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
