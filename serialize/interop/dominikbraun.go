package interop

import (
	dbgraph "github.com/dominikbraun/graph"

	"github.com/thegalactic-go/lconcept/dgraph"
)

// ToDominikBraun converts g into a dominikbraun/graph directed Graph[string, T].
// Each vertex is keyed by hash(content), while edges are added between the
// dgraph node IDs, so the conversion succeeds only when hash maps every
// node's content to that node's own ID (dbgraph.StringHash does this when T
// is string and each node's content equals its ID).
func ToDominikBraun[T any](g *dgraph.DGraph[T], hash dbgraph.Hash[string, T]) (dbgraph.Graph[string, T], error) {
	out := dbgraph.New(hash, dbgraph.Directed())

	for _, n := range g.Nodes() {
		if err := out.AddVertex(n.Content); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if err := out.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// FromDominikBraun converts a dominikbraun/graph directed Graph[string, T]
// back into a *dgraph.DGraph[T], using each vertex's hash as the dgraph
// node ID and its stored value as node Content.
func FromDominikBraun[T any](g dbgraph.Graph[string, T]) (*dgraph.DGraph[T], error) {
	out := dgraph.New[T]()

	adj, err := g.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	for id := range adj {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, err
		}
		if err := out.AddNode(id, v); err != nil {
			return nil, err
		}
	}

	for from, targets := range adj {
		for to := range targets {
			if _, err := out.AddEdge(from, to, nil); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
