package board

// NodeVisible reports whether the node should currently be displayed: every
// ancestor in its ParentID chain must be expanded. Root nodes are always
// visible: a node's own Expanded flag gates its descendants, never itself.
//
// The ancestor walk tracks visited IDs and stops rather than loop on cyclic
// data, and treats a dangling ParentID as the end of the chain.
func (b *Board) NodeVisible(id string) bool {
	n, ok := b.nodes[id]
	if !ok {
		return false
	}
	visited := map[string]bool{id: true}
	for cur := n.ParentID; cur != ""; {
		if visited[cur] {
			break
		}
		visited[cur] = true
		p, ok := b.nodes[cur]
		if !ok {
			break
		}
		if !p.Expanded {
			return false
		}
		cur = p.ParentID
	}
	return true
}

// VisibleNodes returns the nodes eligible for display under the current
// expand/collapse state, in insertion order. Visibility is recomputed from
// scratch on every call.
func (b *Board) VisibleNodes() []*Node {
	var out []*Node
	for _, id := range b.order {
		if b.NodeVisible(id) {
			out = append(out, b.nodes[id])
		}
	}
	return out
}

// VisibleEdges returns the edges whose source and target nodes are both
// currently visible. Edges with dangling endpoints are filtered out here,
// independent of any parent/child semantics on the edge.
func (b *Board) VisibleEdges() []Edge {
	visible := make(map[string]bool, len(b.order))
	for _, id := range b.order {
		if b.NodeVisible(id) {
			visible[id] = true
		}
	}
	var out []Edge
	for _, e := range b.edges {
		if visible[e.Source] && visible[e.Target] {
			out = append(out, e)
		}
	}
	return out
}
