package board

import "testing"

func TestIsDescendant(t *testing.T) {
	b := New()
	root, mid, leaf := nest(t, b)
	other := b.AddNode("other", Position{})

	tests := []struct {
		name     string
		id       string
		ancestor string
		want     bool
	}{
		{"DirectChild", mid, root, true},
		{"Grandchild", leaf, root, true},
		{"Parent", root, mid, false},
		{"Self", root, root, false},
		{"Unrelated", other, root, false},
		{"UnknownNode", "missing", root, false},
		{"UnknownAncestor", leaf, "missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsDescendant(tt.id, tt.ancestor); got != tt.want {
				t.Errorf("IsDescendant(%s, %s) = %t, want %t", tt.name, tt.ancestor, got, tt.want)
			}
		})
	}
}

// The guard must terminate on cyclic data that arrived through import.
func TestIsDescendantTerminatesOnCyclicData(t *testing.T) {
	b := New()
	if err := b.InsertNode(Node{ID: "a", ParentID: "b"}); err != nil {
		t.Fatal(err)
	}
	if err := b.InsertNode(Node{ID: "b", ParentID: "a"}); err != nil {
		t.Fatal(err)
	}
	b.RebuildChildren()

	if b.IsDescendant("a", "zzz") {
		t.Error("IsDescendant should report false for an absent ancestor, even on a cycle")
	}
	if !b.IsDescendant("a", "b") {
		t.Error("b is on a's parent chain")
	}
}
