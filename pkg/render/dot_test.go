package render

import (
	"strings"
	"testing"

	"github.com/flowboard/flowboard/pkg/board"
)

// testBoard builds root -> mid -> leaf plus a detached sibling.
func testBoard(t *testing.T) (*board.Board, map[string]string) {
	t.Helper()
	b := board.New()
	ids := map[string]string{
		"root":    b.AddNode("root", board.Position{X: 0, Y: 0}),
		"mid":     b.AddNode("mid", board.Position{X: 0, Y: 100}),
		"leaf":    b.AddNode("leaf", board.Position{X: 0, Y: 200}),
		"sibling": b.AddNode("sibling", board.Position{X: 200, Y: 0}),
	}
	if _, err := b.Connect(ids["root"], ids["mid"]); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Connect(ids["mid"], ids["leaf"]); err != nil {
		t.Fatal(err)
	}
	return b, ids
}

func TestToDOTVisibleSubgraph(t *testing.T) {
	b, ids := testBoard(t)
	dot := ToDOT(b, Options{})

	for _, label := range []string{"root", "mid", "leaf", "sibling"} {
		if !strings.Contains(dot, `label="`+label+`"`) {
			t.Errorf("expanded board: missing node %q\n%s", label, dot)
		}
	}
	if !strings.Contains(dot, `"`+ids["root"]+`" -> "`+ids["mid"]+`";`) {
		t.Errorf("missing edge root -> mid\n%s", dot)
	}
}

func TestToDOTHidesCollapsedSubtree(t *testing.T) {
	b, ids := testBoard(t)
	b.ToggleExpand(ids["root"])
	dot := ToDOT(b, Options{})

	if strings.Contains(dot, ids["mid"]) || strings.Contains(dot, ids["leaf"]) {
		t.Errorf("collapsed descendants leaked into DOT\n%s", dot)
	}
	// Collapsed parents are annotated with the hidden descendant count.
	if !strings.Contains(dot, `[+2]`) {
		t.Errorf("missing hidden-count annotation on the collapsed root\n%s", dot)
	}
}

func TestToDOTAllOverridesVisibility(t *testing.T) {
	b, ids := testBoard(t)
	b.ToggleExpand(ids["root"])
	dot := ToDOT(b, Options{All: true})

	if !strings.Contains(dot, ids["leaf"]) {
		t.Errorf("All must render hidden nodes\n%s", dot)
	}
	if strings.Contains(dot, "[+") {
		t.Errorf("All must not annotate collapsed parents\n%s", dot)
	}
}

func TestToDOTColorAndSize(t *testing.T) {
	b := board.New()
	id := b.AddNode("tinted", board.Position{})
	b.SetColor(id, "#ffaa00")
	b.SetSize(id, 192, 96)

	dot := ToDOT(b, Options{})
	if !strings.Contains(dot, `fillcolor="#ffaa00"`) {
		t.Errorf("missing fillcolor attribute\n%s", dot)
	}
	if !strings.Contains(dot, "width=2.00") || !strings.Contains(dot, "height=1.00") {
		t.Errorf("pixel sizes not converted to inches\n%s", dot)
	}
}

func TestToDOTHierarchyEdges(t *testing.T) {
	b, ids := testBoard(t)

	plain := ToDOT(b, Options{})
	if strings.Contains(plain, "style=dashed") {
		t.Error("hierarchy edges rendered without ShowHierarchy")
	}

	dot := ToDOT(b, Options{ShowHierarchy: true})
	want := `"` + ids["root"] + `" -> "` + ids["mid"] + `" [style=dashed, arrowhead=empty];`
	if !strings.Contains(dot, want) {
		t.Errorf("missing dashed hierarchy edge\n%s", dot)
	}
}
