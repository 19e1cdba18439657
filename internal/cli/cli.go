// Package cli implements the worksheets command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/worksheets/pkg/buildinfo"
	"github.com/matzehuels/worksheets/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = buildinfo.Name

	// stdoutPath selects standard output for -o.
	stdoutPath = "-"

	// stdinPath reads input from standard input.
	stdinPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running any subcommand attaches the logger to the command context and
// routes worksheet and delivery events to it.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Worksheets prints classroom practice sheets",
		Long: `Worksheets generates print-ready practice sheets: number bond diagrams
with optional dot and number line aids, word grids and phonics sound sheets.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := newLogHooks(c.Logger)
			observability.SetWorksheetHooks(hooks)
			observability.SetDeliveryHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.bondsCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.wordsCommand())
	root.AddCommand(c.phonicsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
