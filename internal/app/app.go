// Package app provides the core application initialization and lifecycle management.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/zizevskikh-dev/wiki-animals-parser/internal/config"
	"github.com/zizevskikh-dev/wiki-animals-parser/internal/crawler"
	"github.com/zizevskikh-dev/wiki-animals-parser/internal/extract"
	"github.com/zizevskikh-dev/wiki-animals-parser/internal/fetch"
	"github.com/zizevskikh-dev/wiki-animals-parser/internal/report"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup and shared across all CLI commands.
// Use Close() to ensure proper resource cleanup on shutdown.
type Application struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Fetcher   *fetch.Fetcher
	Extractor *extract.Extractor
	Crawler   *crawler.Crawler
	Reporter  *report.Writer

	logFile   *os.File
	startTime time.Time
}

// New creates and initializes a new Application with all dependencies.
//
// Logging uses two sinks: the configured log file receives every record from
// debug up, while the console sink on stderr is filtered to the configured
// level. Components receive the combined logger by value; none of them touch
// the global zerolog logger.
func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Str("log_file", cfg.LogFile).
		Msg("Logger initialized")

	fetcher := fetch.New(fetch.Options{
		Timeout:   cfg.HTTPTimeout,
		UserAgent: cfg.UserAgent,
		Proxy:     cfg.Proxy,
	}, logger)
	logger.Debug().Dur("timeout", cfg.HTTPTimeout).Msg("HTTP fetcher initialized")

	extractor := extract.New(extract.ExactLabel(cfg.NextPageLabel), logger)

	crawl := crawler.New(cfg.BaseURL, fetcher, extractor, cfg.MaxPages, logger)
	logger.Debug().
		Str("base_url", cfg.BaseURL).
		Int("max_pages", cfg.MaxPages).
		Msg("Crawler initialized")

	reporter := report.NewWriter(cfg.ReportDir, cfg.ReportBasename, logger)

	app := &Application{
		Config:    cfg,
		Logger:    logger,
		Fetcher:   fetcher,
		Extractor: extractor,
		Crawler:   crawl,
		Reporter:  reporter,
		logFile:   logFile,
		startTime: time.Now(),
	}

	logger.Debug().Msg("Application initialized")
	return app, nil
}

// newLogger builds the dual-sink logger. The file sink always records at
// debug; the console sink is filtered to the configured level and renders
// human-friendly output unless JSON was requested.
func newLogger(cfg *config.Config) (zerolog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	consoleLevel := zerolog.InfoLevel
	if cfg.LogLevel == "debug" {
		consoleLevel = zerolog.DebugLevel
	}

	var console io.Writer = os.Stderr
	if !cfg.JSONLog {
		console = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	sinks := zerolog.MultiLevelWriter(
		logFile,
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: console},
			Level:  consoleLevel,
		},
	)

	logger := zerolog.New(sinks).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return logger, logFile, nil
}

// Close gracefully shuts down the application and all its resources.
// Safe to call more than once.
func (a *Application) Close() error {
	if a.Fetcher != nil {
		a.Fetcher.CloseIdleConnections()
	}
	if a.logFile == nil {
		return nil
	}

	a.Logger.Debug().Dur("uptime", a.Uptime()).Msg("Application shutdown")
	err := a.logFile.Close()
	a.logFile = nil
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
