// Package pkg provides the core libraries for the flowboard graph editor.
//
// # Overview
//
// Flowboard edits node-and-edge boards with an optional parent/child
// hierarchy: collapsing a parent hides its whole subtree, and connecting two
// nodes also nests the target under the source. The pkg directory is
// organized into five main areas:
//
//  1. [board] - Domain logic (the graph store, hierarchy guard, visibility)
//  2. [document] - JSON interchange format (lossless import/export)
//  3. [render] - Graphviz output (DOT, SVG, PNG)
//  4. [config] - Editor preferences (TOML)
//  5. [session] - Recent-board tracking for `flowboard edit`
//
// # Architecture
//
// The typical data flow through flowboard:
//
//	board.json document
//	         ↓
//	    [document] package (validate + rebuild hierarchy)
//	         ↓
//	    [board] package (mutations, invariant checks, visibility)
//	         ↓
//	    [render] package (DOT generation + rasterization)
//	         ↓
//	    SVG/PNG/DOT output
//
// # Quick Start
//
// Load a board, mutate it, and write it back:
//
//	import (
//	    "github.com/flowboard/flowboard/pkg/board"
//	    "github.com/flowboard/flowboard/pkg/document"
//	)
//
//	// 1. Load the document
//	b, _ := document.ReadFile("board.json")
//
//	// 2. Mutate: connect also nests target under source
//	src := b.AddNode("service", board.Position{X: 100, Y: 100})
//	dst := b.AddNode("database", board.Position{X: 100, Y: 250})
//	if _, err := b.Connect(src, dst); err != nil {
//	    // self-loops and hierarchy cycles are rejected atomically
//	}
//
//	// 3. Save
//	_ = document.WriteFile(b, "board.json")
//
// # Main Packages
//
// [board] - The in-memory graph store. Every mutation keeps the
// parent/children inverse index exact and rejects self-loops and hierarchy
// cycles before any state changes. Visibility resolution (expanded ancestors
// only) lives here too.
//
// [document] - The interchange JSON format. Import is all-or-nothing: the
// hierarchy is rebuilt from parentId fields and a malformed document never
// yields a partial board.
//
// [render] - DOT generation for the visible subgraph plus SVG/PNG
// rasterization via Graphviz. Collapsed parents are annotated with their
// hidden descendant count.
//
// [config] - TOML preferences for node creation and render defaults.
//
// [session] - File-backed recent-board list so `flowboard edit` with no
// argument reopens the last board.
//
// [errors] - Structured error codes shared by the CLI and document layer.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/board/...    # Specific package
//	go test -run Example       # Examples only
//
// [board]: https://pkg.go.dev/github.com/flowboard/flowboard/pkg/board
// [document]: https://pkg.go.dev/github.com/flowboard/flowboard/pkg/document
// [render]: https://pkg.go.dev/github.com/flowboard/flowboard/pkg/render
// [config]: https://pkg.go.dev/github.com/flowboard/flowboard/pkg/config
// [session]: https://pkg.go.dev/github.com/flowboard/flowboard/pkg/session
// [errors]: https://pkg.go.dev/github.com/flowboard/flowboard/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/flowboard/flowboard/pkg/buildinfo
package pkg
