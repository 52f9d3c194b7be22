package cli

import (
	"github.com/spf13/cobra"

	"github.com/flowboard/flowboard/pkg/board"
	"github.com/flowboard/flowboard/pkg/config"
	"github.com/flowboard/flowboard/pkg/errors"
)

// newAddCmd creates the add command.
func newAddCmd() *cobra.Command {
	var (
		label string
		at    string
		color string
	)

	cmd := &cobra.Command{
		Use:   "add [file]",
		Short: "Add a node to the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateLabel(label); err != nil {
				return err
			}
			if color != "" {
				if err := errors.ValidateColor(color); err != nil {
					return err
				}
			}

			b, err := loadBoard(args[0])
			if err != nil {
				return err
			}

			pos := board.Position{}
			if at != "" {
				if pos, err = parsePoint(at); err != nil {
					return err
				}
			}

			id := b.AddNode(label, pos)

			cfg, err := config.Load("")
			if err != nil {
				return err
			}
			b.SetSize(id, cfg.Node.Width, cfg.Node.Height)
			if color == "" {
				color = cfg.Node.Color
			}
			if color != "" {
				b.SetColor(id, color)
			}

			if err := saveBoard(b, args[0]); err != nil {
				return err
			}
			n, _ := b.Node(id)
			printSuccess("Added %s (%s)", n.Label, shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "node label (generated when omitted)")
	cmd.Flags().StringVar(&at, "at", "", "canvas position as x,y")
	cmd.Flags().StringVar(&color, "color", "", "node color (defaults to config)")
	return cmd
}

// newConnectCmd creates the connect command. Connecting also nests the
// target under the source, mirroring the canvas gesture.
func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect [file] [source] [target]",
		Short: "Connect two nodes (the target becomes a child of the source)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0])
			if err != nil {
				return err
			}
			source, err := resolveNode(b, args[1])
			if err != nil {
				return err
			}
			target, err := resolveNode(b, args[2])
			if err != nil {
				return err
			}
			if _, err := b.Connect(source, target); err != nil {
				return classify(err)
			}
			if err := saveBoard(b, args[0]); err != nil {
				return err
			}
			printSuccess("Connected %s %s %s", shortID(source), iconArrow, shortID(target))
			return nil
		},
	}
}

// newParentCmd creates the parent command for editing the hierarchy
// without touching edges.
func newParentCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "parent [file] [node] [parent]",
		Short: "Set or clear a node's parent",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0])
			if err != nil {
				return err
			}
			node, err := resolveNode(b, args[1])
			if err != nil {
				return err
			}

			parent := ""
			switch {
			case clear && len(args) == 3:
				return cmd.Help()
			case !clear && len(args) < 3:
				return cmd.Help()
			case !clear:
				if parent, err = resolveNode(b, args[2]); err != nil {
					return err
				}
			}

			if err := b.SetParent(node, parent); err != nil {
				return classify(err)
			}
			if err := saveBoard(b, args[0]); err != nil {
				return err
			}
			if parent == "" {
				printSuccess("Detached %s", shortID(node))
			} else {
				printSuccess("Nested %s under %s", shortID(node), shortID(parent))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "detach the node, making it a root")
	return cmd
}

// newSetCmd creates the set command for editing node attributes.
func newSetCmd() *cobra.Command {
	var (
		label string
		color string
		size  string
		pos   string
	)

	cmd := &cobra.Command{
		Use:   "set [file] [node]",
		Short: "Edit a node's label, color, size, or position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0])
			if err != nil {
				return err
			}
			id, err := resolveNode(b, args[1])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("label") {
				if err := errors.ValidateLabel(label); err != nil {
					return err
				}
				b.SetLabel(id, label)
			}
			if cmd.Flags().Changed("color") {
				// An explicit empty --color restores the theme default.
				if color != "" {
					if err := errors.ValidateColor(color); err != nil {
						return err
					}
				}
				b.SetColor(id, color)
			}
			if size != "" {
				w, h, err := parseSize(size)
				if err != nil {
					return err
				}
				b.SetSize(id, w, h)
			}
			if pos != "" {
				p, err := parsePoint(pos)
				if err != nil {
					return err
				}
				b.SetPosition(id, p)
			}

			if err := saveBoard(b, args[0]); err != nil {
				return err
			}
			printSuccess("Updated %s", shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "new label")
	cmd.Flags().StringVar(&color, "color", "", "new color (empty restores the theme default)")
	cmd.Flags().StringVar(&size, "size", "", "new size as WxH")
	cmd.Flags().StringVar(&pos, "pos", "", "new position as x,y")
	return cmd
}

// newExpandCmd creates the expand command for toggling collapse state.
func newExpandCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "expand [file] [node]",
		Short: "Toggle a node's expand state, or all nodes with --all",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0])
			if err != nil {
				return err
			}

			switch {
			case all:
				b.ToggleExpandAll()
				printSuccess("Toggled all (expanded: %t)", b.AllExpanded())
			case len(args) == 2:
				id, err := resolveNode(b, args[1])
				if err != nil {
					return err
				}
				b.ToggleExpand(id)
				n, _ := b.Node(id)
				printSuccess("%s expanded: %t", shortID(id), n.Expanded)
			default:
				return cmd.Help()
			}

			return saveBoard(b, args[0])
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "toggle every node that has children")
	return cmd
}

// newRemoveCmd creates the rm command for deleting nodes or edges.
func newRemoveCmd() *cobra.Command {
	var edge bool

	cmd := &cobra.Command{
		Use:   "rm [file] [id]",
		Short: "Remove a node (or an edge with --edge)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0])
			if err != nil {
				return err
			}

			if edge {
				b.RemoveEdge(args[1])
				printSuccess("Removed edge %s", args[1])
			} else {
				id, err := resolveNode(b, args[1])
				if err != nil {
					return err
				}
				b.RemoveNode(id)
				printSuccess("Removed node %s", shortID(id))
			}

			return saveBoard(b, args[0])
		},
	}

	cmd.Flags().BoolVar(&edge, "edge", false, "remove an edge by its ID instead of a node")
	return cmd
}
