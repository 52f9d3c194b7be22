package document

import (
	"encoding/json"

	"github.com/flowboard/flowboard/pkg/board"
	"github.com/flowboard/flowboard/pkg/errors"
)

// Document is the interchange format for flowboard graphs: a flat object
// with "nodes" and "edges" arrays. It is the one bit-exact contract of the
// editor: a document exported by flowboard re-imports to an observably
// equivalent graph (same labels, positions, colors, hierarchy, expand
// states).
//
// Optional fields round-trip as absent-vs-present; defaults are applied on
// import only.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Position is a node's 2D coordinate on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is the wire form of a board node.
//
// Expanded, Width, and Height are pointers so a document can distinguish
// "absent, use the default" from an explicit value. Children is carried for
// readability by other tools but is never trusted on import; the hierarchy
// is rebuilt from ParentID.
type Node struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Position Position `json:"position"`
	Color    string   `json:"color,omitempty"`
	ParentID string   `json:"parentId,omitempty"`
	Children []string `json:"children"`
	Expanded *bool    `json:"isExpanded,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
}

// Edge is the wire form of a board edge. Animated is a pointer so absent
// defaults to true on import.
type Edge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Animated *bool  `json:"animated,omitempty"`
}

// FromBoard converts a board to its interchange form. Nodes and edges keep
// the board's insertion order, so repeated exports of the same board are
// byte-identical.
func FromBoard(b *board.Board) Document {
	nodes := b.Nodes()
	edges := b.Edges()

	doc := Document{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(edges)),
	}
	for i, n := range nodes {
		expanded := n.Expanded
		width, height := n.Width, n.Height
		doc.Nodes[i] = Node{
			ID:       n.ID,
			Label:    n.Label,
			Position: Position{X: n.Position.X, Y: n.Position.Y},
			Color:    n.Color,
			ParentID: n.ParentID,
			Children: append(make([]string, 0, len(n.Children)), n.Children...),
			Expanded: &expanded,
			Width:    &width,
			Height:   &height,
		}
	}
	for i, e := range edges {
		animated := e.Animated
		doc.Edges[i] = Edge{ID: e.ID, Source: e.Source, Target: e.Target, Animated: &animated}
	}
	return doc
}

// ToBoard builds a fresh board from a document. The returned board is
// complete or the error describes why the document is unusable: a failed
// import never yields a partial board, so callers can swap it in atomically.
//
// Absent fields take the same defaults as interactive creation: isExpanded
// true, animated true, size 150×80. The children arrays in the document are
// ignored; the index is rebuilt from the parentId fields, which are the
// authoritative hierarchy. Duplicate node IDs and edges referencing unknown
// nodes are rejected with CodeInvalidDocument.
func ToBoard(doc Document) (*board.Board, error) {
	b := board.New()
	for _, nd := range doc.Nodes {
		n := board.Node{
			ID:       nd.ID,
			Label:    nd.Label,
			Color:    nd.Color,
			Position: board.Position{X: nd.Position.X, Y: nd.Position.Y},
			ParentID: nd.ParentID,
			Expanded: true,
		}
		if nd.Expanded != nil {
			n.Expanded = *nd.Expanded
		}
		if nd.Width != nil {
			n.Width = *nd.Width
		}
		if nd.Height != nil {
			n.Height = *nd.Height
		}
		if err := b.InsertNode(n); err != nil {
			return nil, errors.Wrap(errors.CodeInvalidDocument, err, "node %s", nd.ID)
		}
	}
	b.RebuildChildren()

	for _, ed := range doc.Edges {
		e := board.Edge{ID: ed.ID, Source: ed.Source, Target: ed.Target, Animated: true}
		if ed.Animated != nil {
			e.Animated = *ed.Animated
		}
		if err := b.InsertEdge(e); err != nil {
			return nil, errors.Wrap(errors.CodeInvalidDocument, err, "edge %s->%s", ed.Source, ed.Target)
		}
	}
	return b, nil
}

// parse decodes raw JSON into a Document, requiring both top-level keys.
// Decoding happens in two steps so a missing "nodes" or "edges" key is
// reported distinctly from malformed JSON, both as CodeInvalidDocument.
func parse(data []byte) (Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, errors.Wrap(errors.CodeInvalidDocument, err, "not a valid flowboard document")
	}
	for _, key := range []string{"nodes", "edges"} {
		if _, ok := raw[key]; !ok {
			return Document{}, errors.New(errors.CodeInvalidDocument, "missing %q key", key)
		}
	}
	var doc Document
	if err := json.Unmarshal(raw["nodes"], &doc.Nodes); err != nil {
		return Document{}, errors.Wrap(errors.CodeInvalidDocument, err, "invalid nodes array")
	}
	if err := json.Unmarshal(raw["edges"], &doc.Edges); err != nil {
		return Document{}, errors.Wrap(errors.CodeInvalidDocument, err, "invalid edges array")
	}
	return doc, nil
}
