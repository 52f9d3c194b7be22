package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowboard/flowboard/pkg/board"
)

// newShowCmd creates the show command for printing the visible graph.
func newShowCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print the visible graph as a tree",
		Long: `Print the board's hierarchy as an indented tree plus the edge list.

Only the visible subgraph is shown: children of a collapsed node are hidden,
exactly as the canvas would display them. Use --all to ignore collapse state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args[0])
			if err != nil {
				return err
			}
			printBoard(b, all)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include nodes hidden by collapsed ancestors")
	return cmd
}

// printBoard writes the hierarchy tree and edge list to stdout.
func printBoard(b *board.Board, all bool) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("Nodes (%d)", b.NodeCount())))
	for _, n := range b.Roots() {
		printSubtree(b, n, 0, all, map[string]bool{})
	}

	edges := b.VisibleEdges()
	if all {
		edges = b.Edges()
	}
	fmt.Println(StyleTitle.Render(fmt.Sprintf("Edges (%d)", len(edges))))
	for _, e := range edges {
		src, tgt := e.Source, e.Target
		if n, ok := b.Node(src); ok {
			src = n.Label
		}
		if n, ok := b.Node(tgt); ok {
			tgt = n.Label
		}
		fmt.Printf("  %s %s %s\n", StyleValue.Render(src), StyleDim.Render(iconArrow), StyleValue.Render(tgt))
	}
}

// printSubtree prints n and, if it is expanded (or --all), its children.
// The visited set guards against cyclic hierarchies from hand-edited files.
func printSubtree(b *board.Board, n *board.Node, depth int, all bool, visited map[string]bool) {
	if visited[n.ID] {
		return
	}
	visited[n.ID] = true

	indent := strings.Repeat("  ", depth)
	line := fmt.Sprintf("%s%s %s", indent, StyleDim.Render(shortID(n.ID)), StyleValue.Render(n.Label))
	if n.Color != "" {
		line += " " + StyleDim.Render("("+n.Color+")")
	}
	if n.HasChildren() && !n.Expanded {
		line += " " + styleCollapsed.Render(fmt.Sprintf("[+%d]", len(n.Children)))
	}
	fmt.Println(line)

	if !all && !n.Expanded {
		return
	}
	for _, childID := range n.Children {
		if c, ok := b.Node(childID); ok {
			printSubtree(b, c, depth+1, all, visited)
		}
	}
}
