package board

// IsDescendant reports whether ancestorID appears in the ParentID chain of
// the node with the given ID. A node is not its own descendant.
//
// The walk is iterative and tracks visited IDs so it terminates even on
// cyclic data, which cannot be produced through Connect/SetParent but could
// arrive via an externally-crafted document. It also terminates on dangling
// ParentID references.
func (b *Board) IsDescendant(id, ancestorID string) bool {
	n, ok := b.nodes[id]
	if !ok {
		return false
	}
	visited := map[string]bool{id: true}
	for cur := n.ParentID; cur != ""; {
		if cur == ancestorID {
			return true
		}
		if visited[cur] {
			return false
		}
		visited[cur] = true
		p, ok := b.nodes[cur]
		if !ok {
			return false
		}
		cur = p.ParentID
	}
	return false
}
