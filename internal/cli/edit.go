package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flowboard/flowboard/pkg/session"
)

// newEditCmd creates the edit command for the interactive terminal editor.
// Without a file argument it reopens the most recently edited board.
func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a board interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore("")
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				if path, err = store.Last(); err != nil {
					return fmt.Errorf("no board given and %w; run: flowboard edit <file>", err)
				}
			}

			b, err := loadBoard(path)
			if err != nil {
				return err
			}
			if err := store.Touch(path); err != nil {
				loggerFromContext(cmd.Context()).Warn("could not record session", "err", err)
			}

			model := NewEditorModel(b, path)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("editor: %w", err)
			}
			if m, ok := final.(EditorModel); ok && m.saveErr != nil {
				return fmt.Errorf("save on exit: %w", m.saveErr)
			}
			return nil
		},
	}
}

// newRecentCmd creates the recent command listing previously edited boards.
func newRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently edited boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore("")
			if err != nil {
				return err
			}
			entries, err := store.Recent()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printInfo("No boards edited yet")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %s\n", StyleDim.Render(e.OpenedAt.Format("2006-01-02 15:04")), StyleValue.Render(e.Path))
			}
			return nil
		},
	}
}
