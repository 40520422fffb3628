package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Config holds application configuration values
type Config struct {
	// Crawl target
	BaseURL   string
	StartPath string

	// Report output
	ReportDir      string
	ReportBasename string

	// Logging
	LogFile  string
	LogLevel string
	JSONLog  bool

	// HTTP
	HTTPTimeout time.Duration
	UserAgent   string
	Proxy       string

	// Crawl limits
	MaxPages int

	// Pagination navigation label, localized per target wiki
	NextPageLabel string
}

// Load builds a Config by combining defaults, an optional .env file, process
// environment variables, and CLI flags, in that order of precedence.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel:      DefaultLogLevel,
		JSONLog:       DefaultJSONLog,
		HTTPTimeout:   DefaultHTTPTimeout,
		UserAgent:     DefaultUserAgent,
		MaxPages:      DefaultMaxPages,
		NextPageLabel: DefaultNextPageLabel,
	}

	// Merge a .env file into the process environment without clobbering
	// variables that are already set. A missing file is not an error: plain
	// environment variables are an equally valid source.
	envFile := DefaultEnvFile
	if f := lookupFlag(cmd, "env-file"); f != nil && f.Value.String() != "" {
		envFile = f.Value.String()
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	// Environment variables keep the names the tool has always used
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("RELATIVE_URL"); v != "" {
		cfg.StartPath = v
	}
	if v := os.Getenv("REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}
	if v := os.Getenv("REPORT_FILENAME"); v != "" {
		cfg.ReportBasename = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("NEXT_PAGE_LABEL"); v != "" {
		cfg.NextPageLabel = v
	}
	if v := os.Getenv("MAX_PAGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_PAGES %q: %w", v, err)
		}
		cfg.MaxPages = n
	}
	if v := os.Getenv("CRAWL_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("CRAWL_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Read CLI flags if provided
	if cmd != nil {
		readFlags(cmd, cfg)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readFlags(cmd *cobra.Command, cfg *Config) {
	stringFlags := map[string]*string{
		"base-url":        &cfg.BaseURL,
		"start-path":      &cfg.StartPath,
		"report-dir":      &cfg.ReportDir,
		"report-name":     &cfg.ReportBasename,
		"log-file":        &cfg.LogFile,
		"next-page-label": &cfg.NextPageLabel,
		"user-agent":      &cfg.UserAgent,
		"proxy":           &cfg.Proxy,
	}
	for name, dst := range stringFlags {
		if f := lookupFlag(cmd, name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}

	if f := lookupFlag(cmd, "max-pages"); f != nil && f.Changed {
		if n, err := strconv.Atoi(f.Value.String()); err == nil {
			cfg.MaxPages = n
		}
	}
	if f := lookupFlag(cmd, "timeout"); f != nil && f.Changed {
		if d, err := time.ParseDuration(f.Value.String()); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if f := lookupFlag(cmd, "json"); f != nil && f.Value.String() == "true" {
		cfg.JSONLog = true
	}
	if f := lookupFlag(cmd, "verbose"); f != nil && f.Value.String() == "true" {
		cfg.LogLevel = "debug"
	}
}

// lookupFlag finds a flag on the command's local or persistent flag set.
// Persistent flags are only merged into Flags() once cobra executes the
// command, and Load must also work before execution.
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if cmd == nil {
		return nil
	}
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(name)
}
