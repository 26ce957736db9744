package lattice

import (
	"fmt"

	"github.com/thegalactic-go/lconcept/closure"
	"github.com/thegalactic-go/lconcept/concept"
	"github.com/thegalactic-go/lconcept/dgraph"
	"github.com/thegalactic-go/lconcept/order"
)

// CompleteLattice enumerates every closed set of sys via Next-Closure and
// adds an edge c -> d for every pair of concepts with intent(c) ⊊
// intent(d): direction from smaller to larger intent. The result is
// already transitively closed — every pair satisfying the inclusion, not
// just covers, gets an edge.
func CompleteLattice[E order.Element](sys closure.System[E]) *dgraph.DAGraph[*concept.Concept[E]] {
	closed := closure.AllClosures(sys)

	g := dgraph.New[*concept.Concept[E]]()
	ids := make([]string, len(closed))
	for i, s := range closed {
		id := s.Key()
		ids[i] = id
		_ = g.AddNode(id, concept.NewAOnly(s))
	}

	for i, si := range closed {
		for j, sj := range closed {
			if i == j {
				continue
			}
			if si.ProperSubset(sj) {
				_, _ = g.AddEdge(ids[i], ids[j], nil)
			}
		}
	}

	dag, err := dgraph.AsDAG(g)
	if err != nil {
		panic(fmt.Sprintf("lattice: complete lattice is not acyclic, closure.System violates an invariant: %v", err))
	}

	return dag
}
