package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowboard/flowboard/pkg/board"
)

// newNewCmd creates the new command for initializing an empty board document.
func newNewCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Create an empty board document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}
			if err := saveBoard(board.New(), path); err != nil {
				return err
			}
			printSuccess("Created %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
