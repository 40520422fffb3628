package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zizevskikh-dev/wiki-animals-parser/internal/app"
	"github.com/zizevskikh-dev/wiki-animals-parser/internal/config"
	"github.com/zizevskikh-dev/wiki-animals-parser/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wikianimals",
	Short: "Collect animal names from a paginated wiki category and report them by first letter",
	Long: `wikianimals walks a paginated wiki category listing page by page,
collects the entity names from every list item, groups the distinct
normalized names by their first letter and writes the counts to a CSV
report with collision-safe naming.

Configuration comes from a .env file, environment variables or flags;
BASE_URL, RELATIVE_URL, REPORT_DIR, REPORT_FILENAME and LOG_FILE are
required.`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd)

	// Disable the default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Lazily initialize the application before running commands, so -h/help
	// does not require a full (and possibly missing) configuration.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if GetApp() != nil {
			return nil
		}

		cfg, err := config.Load(cmd)
		if err != nil {
			cmd.PrintErrln(ui.Error("configuration error: " + err.Error()))
			return err
		}

		application, err := app.New(cfg)
		if err != nil {
			// SilenceErrors is set, so render the failure here or it is lost
			cmd.PrintErrln(ui.Error("initialization error: " + err.Error()))
			return err
		}
		SetApp(cmd, application)
		return nil
	}

	// Ensure app resources are released after the command runs
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if application := GetApp(); application != nil {
			_ = application.Close()
			SetApp(cmd, nil)
		}
	}

	// Errors are already rendered by the commands themselves
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
