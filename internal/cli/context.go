// Package cli provides the command-line interface for the wiki animals parser.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/zizevskikh-dev/wiki-animals-parser/internal/app"
)

// SetApp stores the Application for commands to retrieve later.
func SetApp(cmd *cobra.Command, a *app.Application) {
	if cmd == nil {
		return
	}
	globalApp = a
}

// GetApp retrieves the Application stored by the root command's pre-run.
func GetApp() *app.Application {
	return globalApp
}

var globalApp *app.Application
