// Package cli implements the flowboard command-line interface.
//
// This package provides commands for creating and editing boards (node and
// edge graphs with a parent/child hierarchy), rendering them as SVG/PNG
// images, and inspecting the visible graph. The CLI is built using cobra
// with structured logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - new: Create an empty board document
//   - show: Print the visible graph as a styled tree
//   - add, connect, parent, set, expand, rm: Single board mutations
//   - render: Generate DOT, SVG, or PNG output (optionally watching the file)
//   - edit: Interactive terminal editor
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/flowboard/flowboard/pkg/buildinfo"
	"github.com/flowboard/flowboard/pkg/errors"
)

// Execute runs the flowboard CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "flowboard",
		Short:        "Flowboard edits node-and-edge graphs from the terminal",
		Long:         `Flowboard is an editor for small directed graphs: create, label, color, connect, and nest nodes, collapse subtrees, and export the result as JSON, SVG, or PNG.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newNewCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newConnectCmd())
	root.AddCommand(newParentCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newExpandCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newRecentCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		if code := errors.GetCode(err); code != "" {
			printError("%s [%s]", errors.UserMessage(err), code)
		} else {
			printError("%s", errors.UserMessage(err))
		}
		return err
	}
	return nil
}
