package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setCrawlEnv(t *testing.T, logFile string) {
	t.Helper()
	t.Setenv("BASE_URL", "https://ru.wikipedia.org/")
	t.Setenv("RELATIVE_URL", "/wiki/Категория:Животные_по_алфавиту")
	t.Setenv("REPORT_DIR", filepath.Join(t.TempDir(), "reports"))
	t.Setenv("REPORT_FILENAME", "report")
	t.Setenv("LOG_FILE", logFile)
}

func TestRoot_AppInitFailureIsPrinted(t *testing.T) {
	// A regular file where the log directory should be makes app.New fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "logs")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}
	setCrawlEnv(t, filepath.Join(blocker, "parser.log"))

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"parse"})
	defer func() {
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		SetApp(rootCmd, nil)
	}()

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error from failing app initialization, got nil")
	}
	if !strings.Contains(stderr.String(), "initialization error") {
		t.Errorf("expected initialization error on stderr, got %q", stderr.String())
	}
}

func TestRoot_ConfigErrorIsPrinted(t *testing.T) {
	for _, key := range []string{"BASE_URL", "RELATIVE_URL", "REPORT_DIR", "REPORT_FILENAME", "LOG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"parse"})
	defer func() {
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		SetApp(rootCmd, nil)
	}()

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error from missing configuration, got nil")
	}
	if !strings.Contains(stderr.String(), "configuration error") {
		t.Errorf("expected configuration error on stderr, got %q", stderr.String())
	}
}
