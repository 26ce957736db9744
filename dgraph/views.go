package dgraph

// Subgraph returns the induced subgraph of g restricted to the given node
// IDs: every listed node present in g, and every edge of g whose endpoints
// are both in the list. IDs absent from g are silently skipped — building
// a subgraph from, say, a Filter()/Ideal() result that already guarantees
// membership is the common case, and an extra existence check there would
// just be ceremony.
func (g *DGraph[T]) Subgraph(ids []string) *DGraph[T] {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	out := New[T](Option(func(c *config) { c.allowSelfLoops = g.cfg.allowSelfLoops }))
	for _, n := range g.Nodes() {
		if keep[n.ID] {
			_ = out.AddNode(n.ID, n.Content)
		}
	}
	for _, e := range g.Edges() {
		if keep[e.From] && keep[e.To] {
			_, _ = out.AddEdge(e.From, e.To, e.Content)
		}
	}

	return out
}
