package dgraph

// DAGraph wraps a DGraph with a runtime-checked acyclicity guarantee. It
// unlocks operations that are only meaningful on an acyclic graph:
// TransitiveReduction, Filter, Ideal. Construct one with AsDAG, which
// validates acyclicity once at the boundary rather than re-checking on
// every call.
type DAGraph[T any] struct {
	*DGraph[T]
}

// AsDAG validates that g is acyclic (via TopologicalSort) and wraps it as a
// DAGraph. Returns ErrHasCycle if g contains a cycle.
func AsDAG[T any](g *DGraph[T]) (*DAGraph[T], error) {
	if _, err := g.TopologicalSort(); err != nil {
		return nil, err
	}

	return &DAGraph[T]{DGraph: g}, nil
}

// NewDAG returns an empty DAGraph configured by opts. Since an empty graph
// is trivially acyclic, this never fails.
func NewDAG[T any](opts ...Option) *DAGraph[T] {
	return &DAGraph[T]{DGraph: New[T](opts...)}
}

// TransitiveReduction returns the smallest subgraph of d with the same
// reachability relation: for a DAG this is exactly the Hasse diagram. An
// edge u -> v survives iff v is reachable from u and there is no
// intermediate node w (w != u, w != v) through which u also reaches v —
// i.e. the edge is not implied by any two-hop (or longer) path.
//
// Defined only on DAGraph: a cyclic graph has no unique minimal
// equivalent under this reachability-preserving notion of reduction.
func (d *DAGraph[T]) TransitiveReduction() *DAGraph[T] {
	tc := d.TransitiveClosure()

	out := New[T](Option(func(c *config) { c.allowSelfLoops = d.cfg.allowSelfLoops }))
	for _, n := range d.Nodes() {
		_ = out.AddNode(n.ID, n.Content)
	}

	for _, u := range d.Nodes() {
		for _, v := range tc.Successors(u.ID) {
			direct := true
			for _, w := range tc.Successors(u.ID) {
				if w == v {
					continue
				}
				if tc.ContainsEdge(w, v) {
					direct = false
					break
				}
			}
			if direct {
				_, _ = out.AddEdge(u.ID, v, nil)
			}
		}
	}

	dag, err := AsDAG(out)
	if err != nil {
		panic("dgraph: TransitiveReduction produced a cycle, which cannot happen")
	}

	return dag
}

// Filter returns the principal filter of id: id together with every node
// reachable from it by a directed path (its "upward closure" in the
// covering order). Defined only on DAGraph, reading edges as pointing
// from larger to smaller (or the reverse, consistently, depending on
// caller convention — Filter always follows successor edges).
func (d *DAGraph[T]) Filter(id string) []string {
	visited := map[string]bool{id: true}
	queue := []string{id}
	out := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range d.Successors(cur) {
			if !visited[next] {
				visited[next] = true
				out = append(out, next)
				queue = append(queue, next)
			}
		}
	}

	return out
}

// Ideal returns the principal ideal of id: id together with every node
// from which id is reachable (its "downward closure"). The mirror image of
// Filter, walking predecessor edges instead of successor edges.
func (d *DAGraph[T]) Ideal(id string) []string {
	visited := map[string]bool{id: true}
	queue := []string{id}
	out := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, prev := range d.Predecessors(cur) {
			if !visited[prev] {
				visited[prev] = true
				out = append(out, prev)
				queue = append(queue, prev)
			}
		}
	}

	return out
}
