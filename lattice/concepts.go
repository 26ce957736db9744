package lattice

import (
	"github.com/thegalactic-go/lconcept/concept"
	"github.com/thegalactic-go/lconcept/dgraph"
	"github.com/thegalactic-go/lconcept/order"
)

// CompleteConcepts fills in the observation side of every node in lat,
// promoting each attribute-only Concept to a full one: for a node whose
// intent is A, it sets B := extentOf(A). Mutates node content in place;
// lat's edges and topology are unaffected. Package fcontext wires this to
// Context.ExtentSet as the "completing to full concepts" pass from spec
// §4.5.
func CompleteConcepts[E order.Element](lat *dgraph.DAGraph[*concept.Concept[E]], extentOf func(*order.OrderedSet[E]) *order.OrderedSet[E]) {
	for _, n := range lat.Nodes() {
		a, ok := n.Content.A()
		if !ok {
			continue
		}
		n.Content = n.Content.WithB(extentOf(a))
	}
}
