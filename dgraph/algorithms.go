package dgraph

import (
	"fmt"

	"github.com/thegalactic-go/lconcept/order"
)

// TransitiveClosure returns a new graph over the same nodes where an edge
// from -> to exists iff to is reachable from from by a path of length ≥ 1
// in g. Adapted from dfs's reachability walk: one DFS per source node,
// O(V·E) overall.
func (g *DGraph[T]) TransitiveClosure() *DGraph[T] {
	out := New[T](WithSelfLoops())
	for _, n := range g.Nodes() {
		_ = out.AddNode(n.ID, n.Content)
	}

	for _, n := range g.Nodes() {
		visited := make(map[string]bool)
		var walk func(cur string)
		walk = func(cur string) {
			for _, next := range g.Successors(cur) {
				if visited[next] {
					continue
				}
				visited[next] = true
				_, _ = out.AddEdge(n.ID, next, nil)
				walk(next)
			}
		}
		walk(n.ID)
	}

	return out
}

// TopologicalSort returns the node IDs of g in a total order consistent
// with every edge (from appears before to), or ErrHasCycle if g is not
// acyclic. Adapted from dfs/topological.go's DFS-with-recursion-stack
// idiom: a node currently on the stack being revisited is a back edge.
func (g *DGraph[T]) TopologicalSort() ([]string, error) {
	const (
		unvisited = 0
		onStack   = 1
		done      = 2
	)
	state := make(map[string]int)
	topo := make([]string, 0, g.NodeCount())

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case done:
			return nil
		case onStack:
			return fmt.Errorf("%w: at node %q", ErrHasCycle, id)
		}
		state[id] = onStack
		for _, next := range g.Successors(id) {
			if err := visit(next); err != nil {
				return err
			}
		}
		state[id] = done
		topo = append(topo, id)

		return nil
	}

	for _, n := range g.Nodes() {
		if err := visit(n.ID); err != nil {
			return nil, err
		}
	}

	// visit appends in postorder; reverse for a source-before-sink order.
	for i, j := 0, len(topo)-1; i < j; i, j = i+1, j-1 {
		topo[i], topo[j] = topo[j], topo[i]
	}

	return topo, nil
}

// tarjanState carries the bookkeeping Tarjan's algorithm needs per node:
// DFS discovery index, lowlink, and stack membership.
type tarjanState struct {
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	counter int
	comps   [][]string
}

// StronglyConnectedComponents partitions g's nodes into maximal strongly
// connected components and returns their condensation as a DAGraph: one
// condensed node per component, carrying the ordered set of original node
// IDs as its Content, with an edge between two condensed nodes iff some
// edge in g crosses between their components. The condensation is acyclic
// by construction (SCCs are exactly the cycles), so it is always a valid
// DAGraph.
//
// Grounded in the single-DFS-pass Tarjan algorithm: a recursive DFS
// (strongconnect) with an explicit component stack and onStack
// bookkeeping.
func (g *DGraph[T]) StronglyConnectedComponents() *DAGraph[*order.OrderedSet[string]] {
	st := &tarjanState{
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
	}

	var strongconnect func(v string)
	strongconnect = func(v string) {
		st.index[v] = st.counter
		st.lowlink[v] = st.counter
		st.counter++
		st.stack = append(st.stack, v)
		st.onStack[v] = true

		for _, w := range g.Successors(v) {
			if _, seen := st.index[w]; !seen {
				strongconnect(w)
				if st.lowlink[w] < st.lowlink[v] {
					st.lowlink[v] = st.lowlink[w]
				}
			} else if st.onStack[w] {
				if st.index[w] < st.lowlink[v] {
					st.lowlink[v] = st.index[w]
				}
			}
		}

		if st.lowlink[v] == st.index[v] {
			var comp []string
			for {
				n := len(st.stack) - 1
				w := st.stack[n]
				st.stack = st.stack[:n]
				st.onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			st.comps = append(st.comps, comp)
		}
	}

	for _, n := range g.Nodes() {
		if _, seen := st.index[n.ID]; !seen {
			strongconnect(n.ID)
		}
	}

	memberOf := make(map[string]string) // original node ID -> condensed node ID
	condensed := New[*order.OrderedSet[string]](WithSelfLoops())
	for i, comp := range st.comps {
		compID := fmt.Sprintf("scc%d", i)
		members := order.NewOrderedSet(order.StringLess)
		for _, id := range comp {
			members.Add(id)
			memberOf[id] = compID
		}
		_ = condensed.AddNode(compID, members)
	}

	for _, e := range g.Edges() {
		ca, cb := memberOf[e.From], memberOf[e.To]
		if ca == cb {
			continue
		}
		if !condensed.ContainsEdge(ca, cb) {
			_, _ = condensed.AddEdge(ca, cb, nil)
		}
	}

	dag, err := AsDAG(condensed)
	if err != nil {
		// SCC condensation is acyclic by construction; surfacing this
		// would mean Tarjan itself is broken.
		panic(fmt.Sprintf("dgraph: condensation is not acyclic: %v", err))
	}

	return dag
}
