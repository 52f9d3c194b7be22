package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowboard/flowboard/pkg/board"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func editorBoard(t *testing.T) (*board.Board, map[string]string) {
	t.Helper()
	b := board.New()
	ids := map[string]string{
		"root": b.AddNode("root", board.Position{}),
		"kid":  b.AddNode("kid", board.Position{}),
		"solo": b.AddNode("solo", board.Position{}),
	}
	if _, err := b.Connect(ids["root"], ids["kid"]); err != nil {
		t.Fatal(err)
	}
	return b, ids
}

func rowLabels(m EditorModel) []string {
	labels := make([]string, len(m.rows))
	for i, r := range m.rows {
		labels[i] = r.node.Label
	}
	return labels
}

func TestEditorRows(t *testing.T) {
	b, ids := editorBoard(t)
	m := NewEditorModel(b, "test.json")

	want := []string{"root", "kid", "solo"}
	got := rowLabels(m)
	if len(got) != len(want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rows = %v, want %v", got, want)
		}
	}
	if m.rows[1].depth != 1 {
		t.Errorf("kid depth = %d, want 1", m.rows[1].depth)
	}

	// Collapsing the root hides its subtree from the row list.
	b.ToggleExpand(ids["root"])
	m.rebuildRows()
	got = rowLabels(m)
	if len(got) != 2 || got[0] != "root" || got[1] != "solo" {
		t.Errorf("rows after collapse = %v, want [root solo]", got)
	}
}

// A node whose parentId does not resolve must still get a row, or it could
// never be selected, reparented, or deleted interactively.
func TestEditorShowsDanglingParentAsRoot(t *testing.T) {
	b := board.New()
	b.AddNode("normal", board.Position{})
	if err := b.InsertNode(board.Node{ID: "stray", Label: "stray", ParentID: "ghost", Expanded: true}); err != nil {
		t.Fatal(err)
	}

	m := NewEditorModel(b, "test.json")
	got := rowLabels(m)
	if len(got) != 2 || got[1] != "stray" {
		t.Fatalf("rows = %v, want the dangling-parent node listed", got)
	}
	if m.rows[1].depth != 0 {
		t.Errorf("stray depth = %d, want treated as a root", m.rows[1].depth)
	}
}

func TestEditorToggleKey(t *testing.T) {
	b, _ := editorBoard(t)
	m := NewEditorModel(b, "test.json")

	next, _ := m.Update(keyMsg("enter"))
	m = next.(EditorModel)
	if len(m.rows) != 2 {
		t.Errorf("rows after toggle = %d, want 2", len(m.rows))
	}
	if !m.dirty {
		t.Error("toggle must mark the editor dirty")
	}

	next, _ = m.Update(keyMsg("enter"))
	m = next.(EditorModel)
	if len(m.rows) != 3 {
		t.Errorf("rows after re-expand = %d, want 3", len(m.rows))
	}
}

func TestEditorConnectRejectionKeepsBoard(t *testing.T) {
	b, ids := editorBoard(t)
	m := NewEditorModel(b, "test.json")

	// Move to kid, start a connect gesture, and pick its own ancestor.
	next, _ := m.Update(keyMsg("j"))
	m = next.(EditorModel)
	next, _ = m.Update(keyMsg("c"))
	m = next.(EditorModel)
	if m.mode != modePick || m.mark != ids["kid"] {
		t.Fatalf("mode/mark = %d/%q, want pick gesture from kid", m.mode, m.mark)
	}
	next, _ = m.Update(keyMsg("k"))
	m = next.(EditorModel)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(EditorModel)

	if m.status == "" {
		t.Error("rejected connect must surface a status message")
	}
	if m.dirty {
		t.Error("rejected connect must not mark the editor dirty")
	}
	if b.EdgeCount() != 1 {
		t.Errorf("edges = %d, want the board untouched", b.EdgeCount())
	}
	kid, _ := b.Node(ids["kid"])
	if kid.ParentID != ids["root"] {
		t.Error("rejected connect must not reparent")
	}
}

func TestEditorDeleteKey(t *testing.T) {
	b, ids := editorBoard(t)
	m := NewEditorModel(b, "test.json")

	next, _ := m.Update(keyMsg("d"))
	m = next.(EditorModel)

	if _, ok := b.Node(ids["root"]); ok {
		t.Error("delete key must remove the selected node")
	}
	if b.EdgeCount() != 0 {
		t.Errorf("edges = %d, incident edges must go with the node", b.EdgeCount())
	}
	kid, _ := b.Node(ids["kid"])
	if kid.ParentID != "" {
		t.Error("children of a removed node become roots")
	}
	if !m.dirty {
		t.Error("delete must mark the editor dirty")
	}
}

func TestEditorAddRootViaInput(t *testing.T) {
	b, _ := editorBoard(t)
	m := NewEditorModel(b, "test.json")

	next, _ := m.Update(keyMsg("A"))
	m = next.(EditorModel)
	if m.mode != modeInput {
		t.Fatalf("mode = %d, want input", m.mode)
	}
	for _, r := range "plan" {
		next, _ = m.Update(keyMsg(string(r)))
		m = next.(EditorModel)
	}
	next, _ = m.Update(keyMsg("enter"))
	m = next.(EditorModel)

	if b.NodeCount() != 4 {
		t.Fatalf("nodes = %d, want 4", b.NodeCount())
	}
	found := false
	for _, n := range b.Nodes() {
		if n.Label == "plan" && n.ParentID == "" {
			found = true
		}
	}
	if !found {
		t.Error("new root node with the typed label not found")
	}
}
