package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on the console")
	cmd.PersistentFlags().Bool("json", false, "Console logs as JSON lines")
	cmd.PersistentFlags().String("env-file", "", "Path to a .env configuration file (default \".env\")")
	cmd.PersistentFlags().String("base-url", "", "Base URL of the target wiki (env BASE_URL)")
	cmd.PersistentFlags().String("start-path", "", "Relative path of the first category page (env RELATIVE_URL)")
	cmd.PersistentFlags().String("report-dir", "", "Directory for CSV reports (env REPORT_DIR)")
	cmd.PersistentFlags().String("report-name", "", "Report base filename without extension (env REPORT_FILENAME)")
	cmd.PersistentFlags().String("log-file", "", "Path of the log file (env LOG_FILE)")
	cmd.PersistentFlags().String("next-page-label", "", "Exact visible text of the next-page link (env NEXT_PAGE_LABEL)")
	cmd.PersistentFlags().Int("max-pages", 0, "Abort if pagination exceeds this many pages, 0 = unbounded (env MAX_PAGES)")
	cmd.PersistentFlags().String("timeout", "", "Hard timeout per page fetch (e.g. 30s)")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent string")
	cmd.PersistentFlags().String("proxy", "", "HTTP proxy URL (e.g. http://localhost:8080)")
}
