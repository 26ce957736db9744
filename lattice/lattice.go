package lattice

import (
	"github.com/thegalactic-go/lconcept/closure"
	"github.com/thegalactic-go/lconcept/concept"
	"github.com/thegalactic-go/lconcept/dgraph"
	"github.com/thegalactic-go/lconcept/order"
)

// Lattice dispatches to DiagramLattice when diagram is true, otherwise to
// CompleteLattice. A thin convenience wrapper over the two named builders
// for callers that only decide which shape they want at runtime.
func Lattice[E order.Element](sys closure.System[E], diagram bool) *dgraph.DAGraph[*concept.Concept[E]] {
	if diagram {
		return DiagramLattice[E](sys)
	}

	return CompleteLattice[E](sys)
}
