package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/flowboard/flowboard/pkg/board"
)

// Options configures DOT generation.
type Options struct {
	// ShowHierarchy draws the parent/child links as dashed edges alongside
	// the regular graph edges.
	ShowHierarchy bool
	// All renders the full graph instead of the visible subgraph.
	All bool
}

const pixelsPerInch = 96.0 // DOT node sizes are in inches

// ToDOT converts a board's visible subgraph to Graphviz DOT format.
// Node sizes and colors come from their board records; collapsed parents are
// annotated with the number of hidden descendants. The resulting DOT string
// can be rendered with [SVG] or [PNG].
func ToDOT(b *board.Board, opts Options) string {
	nodes := b.VisibleNodes()
	edges := b.VisibleEdges()
	if opts.All {
		nodes = b.Nodes()
		edges = b.Edges()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph flowboard {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fixedsize=true];\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		attrs := nodeAttrs(b, n, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
	}

	if opts.ShowHierarchy {
		buf.WriteString("\n")
		for _, n := range nodes {
			for _, childID := range n.Children {
				if !opts.All && !b.NodeVisible(childID) {
					continue
				}
				fmt.Fprintf(&buf, "  %q -> %q [style=dashed, arrowhead=empty];\n", n.ID, childID)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(b *board.Board, n *board.Node, opts Options) []string {
	label := n.Label
	if !opts.All && n.HasChildren() && !n.Expanded {
		label = fmt.Sprintf("%s\n[+%d]", label, hiddenCount(b, n))
	}
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("width=%.2f", n.Width/pixelsPerInch),
		fmt.Sprintf("height=%.2f", n.Height/pixelsPerInch),
	}
	if n.Color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", n.Color))
	}
	return attrs
}

// hiddenCount counts the descendants collapsed under n. The walk tracks
// visited IDs so corrupted hierarchies cannot make it loop.
func hiddenCount(b *board.Board, n *board.Node) int {
	visited := map[string]bool{n.ID: true}
	count := 0
	queue := append([]string(nil), n.Children...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		count++
		if c, ok := b.Node(id); ok {
			queue = append(queue, c.Children...)
		}
	}
	return count
}
