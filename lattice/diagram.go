package lattice

import (
	"fmt"
	"sort"

	"github.com/thegalactic-go/lconcept/closure"
	"github.com/thegalactic-go/lconcept/concept"
	"github.com/thegalactic-go/lconcept/dgraph"
	"github.com/thegalactic-go/lconcept/order"
)

// DiagramLattice builds the Hasse diagram of sys's concept lattice
// directly, via Bordat's incremental worklist construction — no
// transitive-reduction pass over a fully-closed graph.
//
// Starting from the bottom concept cl(∅), each popped concept X has its
// uncovered elements (elements() \ X) partitioned by closure equivalence
// under e ↦ cl(X ∪ {e}); the classes whose closure Y is minimal (no other
// class's closure is a proper subset of Y) give exactly the immediate
// successors (covers) of X. Concepts are deduplicated by their closed
// set's canonical key.
func DiagramLattice[E order.Element](sys closure.System[E]) *dgraph.DAGraph[*concept.Concept[E]] {
	less := sys.Elements().Less()
	bottom := sys.Closure(order.NewOrderedSet(less))

	g := dgraph.New[*concept.Concept[E]]()
	_ = g.AddNode(bottom.Key(), concept.NewAOnly(bottom))

	seen := map[string]bool{bottom.Key(): true}
	worklist := []*order.OrderedSet[E]{bottom}

	for len(worklist) > 0 {
		x := worklist[0]
		worklist = worklist[1:]

		groups := make(map[string]*order.OrderedSet[E]) // key -> cl(X ∪ {e}) for the class
		for _, e := range sys.Elements().Slice() {
			if x.Contains(e) {
				continue
			}
			candidate := x.Clone()
			candidate.Add(e)
			y := sys.Closure(candidate)
			k := y.Key()
			if _, ok := groups[k]; !ok {
				groups[k] = y
			}
		}

		keys := make([]string, 0, len(groups))
		for k, y := range groups {
			minimal := true
			for k2, y2 := range groups {
				if k2 != k && y2.ProperSubset(y) {
					minimal = false
					break
				}
			}
			if minimal {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)

		for _, k := range keys {
			y := groups[k]
			if !g.HasNode(k) {
				_ = g.AddNode(k, concept.NewAOnly(y))
			}
			_, _ = g.AddEdge(x.Key(), k, nil)

			if !seen[k] {
				seen[k] = true
				worklist = append(worklist, y)
			}
		}
	}

	dag, err := dgraph.AsDAG(g)
	if err != nil {
		panic(fmt.Sprintf("lattice: diagram lattice is not acyclic, closure.System violates an invariant: %v", err))
	}

	return dag
}
