// Package cli provides the command-line interface for Inklet.
// Commands are thin wrappers around the core services, which are
// injected once at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/inklet-labs/inklet/internal/core/ports/driven"
	"github.com/inklet-labs/inklet/internal/core/ports/driving"
	"github.com/inklet-labs/inklet/internal/logger"
)

// version is the build version, overridable at link time.
var version = "0.1.0"

// Injected services. Commands guard against nil so the CLI stays
// testable without full wiring.
var (
	publishService driving.PublishService
	compileService driving.CompileService
	configStore    driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "inklet",
	Short: "Publish voice memos as structured pages",
	Long: `Inklet turns raw memo transcripts into structured Notion pages.

A memo is drafted into markdown by an LLM, compiled into typed blocks
and published to your workspace. Memos arrive over the webhook, from a
watched drop directory, through MCP or directly from the command line.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Services aggregates everything the CLI needs.
type Services struct {
	Publish driving.PublishService
	Compile driving.CompileService
	Config  driven.ConfigStore
}

// SetServices injects the core services into the CLI commands.
// Must be called before Execute.
func SetServices(s Services) {
	publishService = s.Publish
	compileService = s.Compile
	configStore = s.Config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
