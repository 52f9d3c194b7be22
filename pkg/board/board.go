package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrInvalidNodeID is returned by [Board.InsertNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Board.InsertNode] when a node with
	// the same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownNode is returned by structural operations ([Board.Connect],
	// [Board.SetParent], [Board.InsertEdge]) when a referenced node does not
	// exist in the board.
	ErrUnknownNode = errors.New("unknown node")

	// ErrSelfLoop is returned when an operation would connect a node to
	// itself or make a node its own parent.
	ErrSelfLoop = errors.New("node cannot reference itself")

	// ErrWouldCycle is returned by [Board.Connect] and [Board.SetParent]
	// when the requested parent/child relationship would make a node its
	// own ancestor. The board is left unchanged.
	ErrWouldCycle = errors.New("would create a cycle in the hierarchy")
)

// Default and minimum node dimensions in canvas units.
const (
	DefaultWidth  = 150.0
	DefaultHeight = 80.0
	MinWidth      = 100.0
	MinHeight     = 50.0
)

// Position is a node's 2D canvas coordinate.
type Position struct {
	X float64
	Y float64
}

// Node is a vertex on the board with display and hierarchy attributes.
//
// ID is assigned at creation and immutable. ParentID links the node into the
// hierarchy layered over the graph; Children is the derived inverse index and
// is maintained by the board; it always contains exactly the IDs of nodes
// whose ParentID points here. Do not modify Children directly.
type Node struct {
	ID       string
	Label    string
	Color    string // empty means "use default theme color"
	Position Position
	Width    float64
	Height   float64
	ParentID string // empty for root nodes
	Children []string
	Expanded bool // gates visibility of descendants, not of the node itself
}

// HasChildren reports whether any node has this node as its parent.
func (n *Node) HasChildren() bool { return len(n.Children) > 0 }

// Edge is a directed connection between two node IDs, independent of the
// hierarchy. Self-edges are rejected at creation.
type Edge struct {
	ID       string
	Source   string
	Target   string
	Animated bool // display hint only
}

// EdgeID derives the canonical edge identifier for a source/target pair.
func EdgeID(source, target string) string {
	return fmt.Sprintf("e%s-%s", source, target)
}

// Board holds the canonical node and edge collections for one editing
// session and provides atomic, invariant-preserving mutation operations.
//
// Every structural operation either fully succeeds or leaves the board
// untouched. The hierarchy (ParentID links) is guaranteed acyclic as long as
// mutations go through [Board.Connect] and [Board.SetParent]; traversals are
// nevertheless guarded against cyclic data arriving through import.
//
// Board is not safe for concurrent use. An editing session is
// single-threaded: each user action maps to one synchronous operation.
type Board struct {
	nodes map[string]*Node
	order []string // node IDs in insertion order, for stable iteration
	edges []Edge

	// allExpanded tracks the state the next ToggleExpandAll will negate.
	// Within a session it is a simple toggle and can disagree with per-node
	// flags after individual toggles; RebuildChildren re-derives it from the
	// node flags so it survives an export/import cycle.
	allExpanded bool

	seq int // counter for generated labels
}

// New creates an empty board.
func New() *Board {
	return &Board{
		nodes:       make(map[string]*Node),
		allExpanded: true,
	}
}

// AddNode creates a node with a fresh ID at the given position and returns
// the ID. It never fails. An empty label gets a generated name ("Node 3").
// New nodes use the default size and start expanded.
func (b *Board) AddNode(label string, pos Position) string {
	b.seq++
	if label == "" {
		label = fmt.Sprintf("Node %d", b.seq)
	}
	n := &Node{
		ID:       uuid.NewString(),
		Label:    label,
		Position: pos,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Expanded: true,
	}
	b.nodes[n.ID] = n
	b.order = append(b.order, n.ID)
	return n.ID
}

// InsertNode adds a fully-specified node, preserving its ID. It is used by
// import paths; interactive creation should use [Board.AddNode]. Returns
// ErrInvalidNodeID for an empty ID or ErrDuplicateNodeID if the ID is taken.
//
// Non-positive dimensions fall back to the defaults, others are clamped to
// the minimums. The Children index is not taken from the input; call
// [Board.RebuildChildren] once all nodes are inserted.
func (b *Board) InsertNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := b.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Width <= 0 {
		n.Width = DefaultWidth
	}
	if n.Height <= 0 {
		n.Height = DefaultHeight
	}
	n.Width = max(n.Width, MinWidth)
	n.Height = max(n.Height, MinHeight)
	n.Children = nil
	node := &n
	b.nodes[node.ID] = node
	b.order = append(b.order, node.ID)
	return nil
}

// InsertEdge adds a fully-specified edge between two existing nodes.
// An empty edge ID is derived from the endpoints via [EdgeID].
// Returns ErrSelfLoop if both endpoints are the same node, or ErrUnknownNode
// if either endpoint is missing. InsertEdge does not touch the hierarchy;
// use [Board.Connect] for the interactive connect gesture.
func (b *Board) InsertEdge(e Edge) error {
	if e.Source == e.Target {
		return fmt.Errorf("edge %s->%s: %w", e.Source, e.Target, ErrSelfLoop)
	}
	if _, ok := b.nodes[e.Source]; !ok {
		return fmt.Errorf("edge source %s: %w", e.Source, ErrUnknownNode)
	}
	if _, ok := b.nodes[e.Target]; !ok {
		return fmt.Errorf("edge target %s: %w", e.Target, ErrUnknownNode)
	}
	if e.ID == "" {
		e.ID = EdgeID(e.Source, e.Target)
	}
	b.edges = append(b.edges, e)
	return nil
}

// SetLabel replaces a node's label. Unknown IDs are a silent no-op.
func (b *Board) SetLabel(id, label string) {
	if n, ok := b.nodes[id]; ok {
		n.Label = label
	}
}

// SetColor replaces a node's color. An empty color restores the theme
// default. Unknown IDs are a silent no-op.
func (b *Board) SetColor(id, color string) {
	if n, ok := b.nodes[id]; ok {
		n.Color = color
	}
}

// SetPosition moves a node to a new canvas coordinate.
// Unknown IDs are a silent no-op.
func (b *Board) SetPosition(id string, pos Position) {
	if n, ok := b.nodes[id]; ok {
		n.Position = pos
	}
}

// SetSize resizes a node, clamping to the 100×50 minimums so nodes never
// degenerate. Unknown IDs are a silent no-op.
func (b *Board) SetSize(id string, width, height float64) {
	n, ok := b.nodes[id]
	if !ok {
		return
	}
	n.Width = max(width, MinWidth)
	n.Height = max(height, MinHeight)
}

// ToggleExpand flips a node's expand state. Unknown IDs are a silent no-op.
// Flipping a node without children is stored but has no visible effect,
// since the flag only gates descendants.
func (b *Board) ToggleExpand(id string) {
	if n, ok := b.nodes[id]; ok {
		n.Expanded = !n.Expanded
	}
}

// ToggleExpandAll flips the board-wide expand toggle and applies the new
// state to every node that has children. The toggle is tracked separately
// from per-node flags: it negates its own previous state rather than
// inspecting the nodes, matching the editor's expand-all button.
func (b *Board) ToggleExpandAll() {
	b.allExpanded = !b.allExpanded
	for _, n := range b.nodes {
		if n.HasChildren() {
			n.Expanded = b.allExpanded
		}
	}
}

// AllExpanded reports the state the next render of the expand-all control
// should show. It reflects the last bulk toggle (or the derived state after
// an import), not the individual per-node flags.
func (b *Board) AllExpanded() bool { return b.allExpanded }

// Connect creates an edge source→target and, atomically with it, makes
// source the parent of target. The target is detached from any previous
// parent. Returns the new edge ID.
//
// Connect rejects with ErrSelfLoop when source == target, ErrUnknownNode
// when either endpoint is missing, and ErrWouldCycle when source is already
// a descendant of target (the reparent would make target its own ancestor).
// On rejection the board is left exactly as it was.
func (b *Board) Connect(source, target string) (string, error) {
	if source == target {
		return "", fmt.Errorf("connect %s->%s: %w", source, target, ErrSelfLoop)
	}
	src, ok := b.nodes[source]
	if !ok {
		return "", fmt.Errorf("connect source %s: %w", source, ErrUnknownNode)
	}
	tgt, ok := b.nodes[target]
	if !ok {
		return "", fmt.Errorf("connect target %s: %w", target, ErrUnknownNode)
	}
	if b.IsDescendant(source, target) {
		return "", fmt.Errorf("connect %s->%s: %w", source, target, ErrWouldCycle)
	}

	b.attach(tgt, src)
	e := Edge{ID: EdgeID(source, target), Source: source, Target: target, Animated: true}
	b.edges = append(b.edges, e)
	return e.ID, nil
}

// SetParent re-homes a node in the hierarchy without touching edges.
// An empty parentID detaches the node, making it a root.
//
// SetParent rejects with ErrSelfLoop when id == parentID, ErrUnknownNode
// when either node is missing, and ErrWouldCycle when parentID is already a
// descendant of id. On rejection the board is left unchanged.
func (b *Board) SetParent(id, parentID string) error {
	n, ok := b.nodes[id]
	if !ok {
		return fmt.Errorf("node %s: %w", id, ErrUnknownNode)
	}
	if parentID == "" {
		b.detach(n)
		return nil
	}
	if id == parentID {
		return fmt.Errorf("parent %s: %w", parentID, ErrSelfLoop)
	}
	p, ok := b.nodes[parentID]
	if !ok {
		return fmt.Errorf("parent %s: %w", parentID, ErrUnknownNode)
	}
	if b.IsDescendant(parentID, id) {
		return fmt.Errorf("parent %s under %s: %w", id, parentID, ErrWouldCycle)
	}
	b.attach(n, p)
	return nil
}

// RemoveNode deletes a node. Its children are promoted to roots, it is
// removed from its parent's children, and all incident edges are dropped.
// Unknown IDs are a silent no-op.
func (b *Board) RemoveNode(id string) {
	n, ok := b.nodes[id]
	if !ok {
		return
	}
	b.detach(n)
	for _, childID := range n.Children {
		if c, ok := b.nodes[childID]; ok {
			c.ParentID = ""
		}
	}
	delete(b.nodes, id)
	b.order = slices.DeleteFunc(b.order, func(s string) bool { return s == id })
	b.edges = slices.DeleteFunc(b.edges, func(e Edge) bool {
		return e.Source == id || e.Target == id
	})
}

// RemoveEdge deletes the edge with the given ID, leaving the hierarchy
// alone. Unknown IDs are a silent no-op.
func (b *Board) RemoveEdge(id string) {
	b.edges = slices.DeleteFunc(b.edges, func(e Edge) bool { return e.ID == id })
}

// Node returns the node with the given ID and true, or nil and false.
// The pointer refers to the live node; mutate it through board operations
// rather than directly.
func (b *Board) Node(id string) (*Node, bool) {
	n, ok := b.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (b *Board) Nodes() []*Node {
	nodes := make([]*Node, 0, len(b.order))
	for _, id := range b.order {
		nodes = append(nodes, b.nodes[id])
	}
	return nodes
}

// Roots returns the nodes that start a hierarchy tree, in insertion order:
// nodes with no parent, plus nodes whose ParentID does not resolve. Treating
// dangling references as roots keeps every node reachable in tree walks,
// matching how [Board.NodeVisible] handles them.
func (b *Board) Roots() []*Node {
	var out []*Node
	for _, id := range b.order {
		n := b.nodes[id]
		if _, ok := b.nodes[n.ParentID]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns a copy of all edges in insertion order.
func (b *Board) Edges() []Edge { return slices.Clone(b.edges) }

// Edge returns the edge with the given ID and true, or a zero Edge and false.
func (b *Board) Edge(id string) (Edge, bool) {
	for _, e := range b.edges {
		if e.ID == id {
			return e, true
		}
	}
	return Edge{}, false
}

// NodeCount returns the number of nodes on the board.
func (b *Board) NodeCount() int { return len(b.nodes) }

// EdgeCount returns the number of edges on the board.
func (b *Board) EdgeCount() int { return len(b.edges) }

// RebuildChildren recomputes every node's Children index from the ParentID
// fields. ParentID is the authoritative source of the hierarchy; the index
// is a materialized view and is never trusted from external input. Children
// of a node appear in board insertion order. Dangling ParentID references
// simply contribute no index entry.
//
// It also re-derives the expand-all toggle from the node flags: true unless
// some node with children is collapsed. Import paths call RebuildChildren,
// so the toggle keeps alternating across save/load cycles.
func (b *Board) RebuildChildren() {
	for _, n := range b.nodes {
		n.Children = nil
	}
	for _, id := range b.order {
		n := b.nodes[id]
		if n.ParentID == "" {
			continue
		}
		if p, ok := b.nodes[n.ParentID]; ok {
			p.Children = append(p.Children, id)
		}
	}
	b.allExpanded = true
	for _, n := range b.nodes {
		if n.HasChildren() && !n.Expanded {
			b.allExpanded = false
			break
		}
	}
}

// detach removes n from its parent's children and clears its ParentID.
func (b *Board) detach(n *Node) {
	if n.ParentID == "" {
		return
	}
	if p, ok := b.nodes[n.ParentID]; ok {
		p.Children = slices.DeleteFunc(p.Children, func(s string) bool { return s == n.ID })
	}
	n.ParentID = ""
}

// attach makes parent the parent of child, detaching child first so the
// children index stays the exact inverse of the ParentID fields.
func (b *Board) attach(child, parent *Node) {
	b.detach(child)
	child.ParentID = parent.ID
	parent.Children = append(parent.Children, child.ID)
}
