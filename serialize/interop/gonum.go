package interop

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/thegalactic-go/lconcept/dgraph"
)

// ToGonum converts g into a gonum graph/simple.DirectedGraph. Since gonum
// nodes are bare int64 identifiers, string node IDs are assigned sequential
// int64s in sorted order; the returned idOf/nodeOf maps let a caller
// translate between the two identifier spaces in both directions.
func ToGonum[T any](g *dgraph.DGraph[T]) (gg *simple.DirectedGraph, idOf map[string]int64, nodeOf map[int64]string) {
	gg = simple.NewDirectedGraph()

	nodes := g.Nodes()
	idOf = make(map[string]int64, len(nodes))
	nodeOf = make(map[int64]string, len(nodes))

	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)

	for i, id := range ids {
		gid := int64(i)
		idOf[id] = gid
		nodeOf[gid] = id
		gg.AddNode(simple.Node(gid))
	}

	for _, e := range g.Edges() {
		gg.SetEdge(simple.Edge{F: simple.Node(idOf[e.From]), T: simple.Node(idOf[e.To])})
	}

	return gg, idOf, nodeOf
}

// FromGonum converts a gonum graph/simple.DirectedGraph back into a
// *dgraph.DGraph[string], using nodeOf to recover the original string IDs
// (as produced by ToGonum, or supplied by the caller for a graph built
// directly against gonum APIs). Node content is the string ID itself;
// gonum carries no richer node payload to recover.
func FromGonum(gg *simple.DirectedGraph, nodeOf map[int64]string) (*dgraph.DGraph[string], error) {
	out := dgraph.New[string]()

	nodes := gg.Nodes()
	for nodes.Next() {
		n := nodes.Node()
		id, ok := nodeOf[n.ID()]
		if !ok {
			continue
		}
		if err := out.AddNode(id, id); err != nil {
			return nil, err
		}
	}

	edges := gg.Edges()
	for edges.Next() {
		e := edges.Edge()
		from, ok1 := nodeOf[e.From().ID()]
		to, ok2 := nodeOf[e.To().ID()]
		if !ok1 || !ok2 {
			continue
		}
		if _, err := out.AddEdge(from, to, nil); err != nil {
			return nil, err
		}
	}

	return out, nil
}
