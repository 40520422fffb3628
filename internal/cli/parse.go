package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/zizevskikh-dev/wiki-animals-parser/internal/aggregate"
	"github.com/zizevskikh-dev/wiki-animals-parser/internal/ui"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Crawl the category listing and write the first-letter report",
	Long: `Walks the configured category listing from RELATIVE_URL, following
the localized "next page" link until the final page, then groups the
distinct normalized names by first letter and writes them as a
two-column CSV report. An existing report file is never overwritten;
a numeric suffix is appended instead.`,
	Example: `  # Crawl using the settings from .env
  wikianimals parse

  # Override the start page and cap runaway pagination
  wikianimals parse --start-path="/wiki/Категория:Животные_по_алфавиту" --max-pages=500`,
	Args: cobra.NoArgs,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	application := GetApp()
	if application == nil {
		return fmt.Errorf("application is not initialized")
	}
	logger := application.Logger

	// Spinner-style bar: the page count is unknown until the last page
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("crawling category pages"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	application.Crawler.OnPage = func(page, totalNames int) {
		_ = bar.Add(1)
		bar.Describe(fmt.Sprintf("page %d, %d names", page, totalNames))
	}

	result, err := application.Crawler.Crawl(cmd.Context(), application.Config.StartPath)
	_ = bar.Finish()
	if err != nil {
		logger.Error().Err(err).Msg("Crawl failed, no report written")
		cmd.PrintErrln(ui.Error("crawl failed: " + err.Error()))
		return err
	}

	if len(result.Names) == 0 {
		logger.Warn().Msg("No entity names collected, nothing to report")
		cmd.Println(ui.Info("no entity names collected, no report written"))
		return nil
	}

	rows := aggregate.ByFirstLetter(result.Names)
	logger.Info().Int("letters", len(rows)).Msg("Grouping finished")

	path, err := application.Reporter.Write(rows)
	if err != nil {
		cmd.PrintErrln(ui.Error("failed to write report: " + err.Error()))
		return err
	}
	if path == "" {
		cmd.Println(ui.Info("aggregation is empty, no report written"))
		return nil
	}

	cmd.Println(ui.Success(fmt.Sprintf(
		"Wiki animals parser completed successfully: %d pages, %d names, report %s",
		result.PagesParsed, len(result.Names), path,
	)))
	return nil
}
