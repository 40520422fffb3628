package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zizevskikh-dev/wiki-animals-parser/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		BaseURL:        "https://ru.wikipedia.org/",
		StartPath:      "/wiki/Категория:Животные_по_алфавиту",
		ReportDir:      filepath.Join(dir, "reports"),
		ReportBasename: "report",
		LogFile:        filepath.Join(dir, "logs", "parser.log"),
		LogLevel:       "info",
		HTTPTimeout:    5 * time.Second,
		UserAgent:      "test",
		NextPageLabel:  "Следующая страница",
	}
}

func TestNew_WiresComponentsAndLogFile(t *testing.T) {
	cfg := testConfig(t)

	application, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer application.Close()

	if application.Crawler == nil || application.Fetcher == nil ||
		application.Extractor == nil || application.Reporter == nil {
		t.Fatal("expected all components wired")
	}

	// Debug records must reach the file sink regardless of console level.
	application.Logger.Debug().Msg("file sink check")
	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.Contains(string(data), "file sink check") {
		t.Errorf("expected debug record in log file, got %q", string(data))
	}
}

func TestNew_RequiresConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil config, got nil")
	}
}

func TestUptime_Grows(t *testing.T) {
	application, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer application.Close()

	first := application.Uptime()
	time.Sleep(10 * time.Millisecond)
	if second := application.Uptime(); second <= first {
		t.Errorf("expected uptime to grow, got %v then %v", first, second)
	}
}

func TestClose_Idempotent(t *testing.T) {
	application, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := application.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := application.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}
