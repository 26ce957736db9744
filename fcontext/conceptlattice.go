package fcontext

import (
	"github.com/thegalactic-go/lconcept/concept"
	"github.com/thegalactic-go/lconcept/dgraph"
	"github.com/thegalactic-go/lconcept/lattice"
)

// ConceptLattice builds c's concept lattice and completes every node to a
// full concept (B := extent(A)). diagram selects Bordat's direct Hasse-
// diagram construction; otherwise the fully transitive lattice is built
// via Next-Closure enumeration.
func (c *Context[E]) ConceptLattice(diagram bool) *dgraph.DAGraph[*concept.Concept[E]] {
	var lat *dgraph.DAGraph[*concept.Concept[E]]
	if diagram {
		lat = lattice.DiagramLattice[E](c)
	} else {
		lat = lattice.CompleteLattice[E](c)
	}

	lattice.CompleteConcepts(lat, c.ExtentSet)

	return lat
}
