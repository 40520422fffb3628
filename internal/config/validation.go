package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zizevskikh-dev/wiki-animals-parser/internal/urlutil"
)

// ErrMissingSetting reports a required configuration value that is absent or
// empty. This is fatal at startup: no partial run is attempted.
var ErrMissingSetting = errors.New("missing required configuration")

func validate(c *Config) error {
	required := []struct {
		key   string
		value string
	}{
		{"BASE_URL", c.BaseURL},
		{"RELATIVE_URL", c.StartPath},
		{"REPORT_DIR", c.ReportDir},
		{"REPORT_FILENAME", c.ReportBasename},
		{"LOG_FILE", c.LogFile},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSetting, strings.Join(missing, ", "))
	}

	if err := urlutil.ValidateURL(c.BaseURL); err != nil {
		return fmt.Errorf("invalid BASE_URL: %w", err)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("max pages must be >= 0")
	}
	if c.NextPageLabel == "" {
		return fmt.Errorf("next page label must not be empty")
	}

	return nil
}
