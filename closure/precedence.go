package closure

import (
	"fmt"

	"github.com/thegalactic-go/lconcept/dgraph"
	"github.com/thegalactic-go/lconcept/order"
)

// nodeID derives a stable dgraph node identifier from an element's default
// formatting. Fine for the string and int element types this module's
// closure systems traffic in; an E whose %v rendering is not injective
// would need its own PrecedenceGraph variant, which string and int
// element domains never require.
func nodeID[E order.Element](e E) string {
	return fmt.Sprintf("%v", e)
}

// PrecedenceGraph builds the directed graph on sys's elements where an
// edge a -> b exists iff a ∈ Closure({b}) and a != b. Reduction
// (ReducibleElements) consumes this graph's strongly connected components.
func PrecedenceGraph[E order.Element](sys System[E]) *dgraph.DGraph[E] {
	less := sys.Elements().Less()
	elems := sys.Elements().Slice()

	g := dgraph.New[E]()
	for _, e := range elems {
		_ = g.AddNode(nodeID(e), e)
	}

	for _, b := range elems {
		clB := sys.Closure(order.Of(less, b))
		for _, a := range elems {
			if a == b {
				continue
			}
			if clB.Contains(a) {
				_, _ = g.AddEdge(nodeID(a), nodeID(b), nil)
			}
		}
	}

	return g
}
