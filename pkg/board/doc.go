// Package board provides the hierarchical graph model behind the flowboard
// editor: nodes with display attributes, directed edges, and a parent/child
// tree layered over the graph.
//
// # Overview
//
// A [Board] owns the canonical node and edge collections for one editing
// session. Every user gesture (add, connect, reparent, toggle, edit) maps to
// one synchronous board operation. Structural operations consult the
// hierarchy guard first; a rejected operation returns an error and leaves
// the board exactly as it was.
//
// # Basic Usage
//
// Create a board with [New], add nodes with [Board.AddNode], and connect
// them with [Board.Connect]:
//
//	b := board.New()
//	sun := b.AddNode("Sun", board.Position{})
//	mars := b.AddNode("Mars", board.Position{X: 200})
//	if _, err := b.Connect(sun, mars); err != nil {
//		// rejected: self-loop or would-be cycle
//	}
//
// Connect creates the edge and, atomically with it, makes the source the
// structural parent of the target. [Board.SetParent] edits the hierarchy
// without touching edges.
//
// # Hierarchy Invariants
//
// The ParentID chain is kept acyclic: Connect and SetParent reject any
// operation that would make a node its own ancestor ([ErrWouldCycle]) or its
// own parent ([ErrSelfLoop]). Each node's Children slice is a derived index,
// maintained in the same step as every ParentID change, so Children and
// ParentID are always exact inverses of each other. On import the index is
// rebuilt from ParentID via [Board.RebuildChildren]; document children
// arrays are never trusted.
//
// # Visibility
//
// The visible subgraph is derived, not stored: [Board.VisibleNodes] includes
// a node iff every ancestor is expanded, and [Board.VisibleEdges] includes
// an edge iff both endpoints are visible. Both recompute from scratch on
// each call. Ancestor walks are iterative with a visited set, so traversal
// terminates even on cyclic or dangling data from crafted documents.
//
// # Concurrency
//
// Board instances are not safe for concurrent use. The editor is
// single-threaded and event-driven; no operation suspends mid-mutation, so
// the guard-then-commit sequence is naturally atomic.
package board
