package dgraph

import (
	"fmt"
	"reflect"
	"sort"
)

// AddNode inserts a node with the given id and content. Re-adding an
// existing id is an error (ErrNodeExists) rather than a silent overwrite,
// matching lvlath/core's AddVertex behavior.
func (g *DGraph[T]) AddNode(id string, content T) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrNodeExists, id)
	}
	g.nodes[id] = &Node[T]{ID: id, Content: content}

	return nil
}

// RemoveNode deletes a node and every edge incident to it.
func (g *DGraph[T]) RemoveNode(id string) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	delete(g.nodes, id)

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	for to, edgeIDs := range g.out[id] {
		for _, edgeID := range edgeIDs {
			delete(g.edges, edgeID)
		}
		delete(g.in[to], id)
	}
	delete(g.out, id)
	for from, edgeIDs := range g.in[id] {
		for _, edgeID := range edgeIDs {
			delete(g.edges, edgeID)
		}
		delete(g.out[from], id)
	}
	delete(g.in, id)

	return nil
}

// Node returns the node with the given id.
func (g *DGraph[T]) Node(id string) (*Node[T], bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id names a node in g.
func (g *DGraph[T]) HasNode(id string) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// NodeCount returns the number of nodes in g.
func (g *DGraph[T]) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// Nodes returns every node in g, sorted by ID for deterministic iteration.
func (g *DGraph[T]) Nodes() []*Node[T] {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]*Node[T], 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// AddEdge inserts a directed edge from -> to carrying content. Rejects
// self-loops unless WithSelfLoops was given. A second edge between the
// same ordered pair is permitted as long as its content differs from
// every edge already on that pair (reflect.DeepEqual); an edge with the
// same endpoints and the same content is rejected as ErrParallelEdge.
func (g *DGraph[T]) AddEdge(from, to string, content any) (string, error) {
	if from == to && !g.cfg.allowSelfLoops {
		return "", fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if !g.HasNode(from) {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	for _, edgeID := range g.out[from][to] {
		if reflect.DeepEqual(g.edges[edgeID].Content, content) {
			return "", fmt.Errorf("%w: %q -> %q", ErrParallelEdge, from, to)
		}
	}

	id := g.nextID()
	g.edges[id] = &Edge{ID: id, From: from, To: to, Content: content}

	if g.out[from] == nil {
		g.out[from] = make(map[string][]string)
	}
	g.out[from][to] = append(g.out[from][to], id)
	if g.in[to] == nil {
		g.in[to] = make(map[string][]string)
	}
	g.in[to][from] = append(g.in[to][from], id)

	return id, nil
}

// RemoveEdge deletes every edge from -> to, regardless of content.
func (g *DGraph[T]) RemoveEdge(from, to string) error {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	ids, exists := g.out[from][to]
	if !exists {
		return fmt.Errorf("%w: %q -> %q", ErrEdgeNotFound, from, to)
	}
	for _, id := range ids {
		delete(g.edges, id)
	}
	delete(g.out[from], to)
	delete(g.in[to], from)

	return nil
}

// ContainsEdge reports whether at least one edge from -> to exists,
// regardless of content.
func (g *DGraph[T]) ContainsEdge(from, to string) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return len(g.out[from][to]) > 0
}

// EdgeCount returns the number of edges in g.
func (g *DGraph[T]) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return len(g.edges)
}

// Edges returns every edge in g, sorted by (From, To) for deterministic
// iteration.
func (g *DGraph[T]) Edges() []*Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Successors returns the IDs of nodes reachable from id by a single edge,
// sorted ascending.
func (g *DGraph[T]) Successors(id string) []string {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]string, 0, len(g.out[id]))
	for to := range g.out[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out
}

// Predecessors returns the IDs of nodes with a single edge into id, sorted
// ascending.
func (g *DGraph[T]) Predecessors(id string) []string {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]string, 0, len(g.in[id]))
	for from := range g.in[id] {
		out = append(out, from)
	}
	sort.Strings(out)

	return out
}

// Sources returns every node with no incoming edges, sorted ascending.
func (g *DGraph[T]) Sources() []string {
	var out []string
	for _, n := range g.Nodes() {
		g.muEdges.RLock()
		indeg := len(g.in[n.ID])
		g.muEdges.RUnlock()
		if indeg == 0 {
			out = append(out, n.ID)
		}
	}

	return out
}

// Sinks returns every node with no outgoing edges, sorted ascending.
func (g *DGraph[T]) Sinks() []string {
	var out []string
	for _, n := range g.Nodes() {
		g.muEdges.RLock()
		outdeg := len(g.out[n.ID])
		g.muEdges.RUnlock()
		if outdeg == 0 {
			out = append(out, n.ID)
		}
	}

	return out
}
