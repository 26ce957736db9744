package concept

import (
	"fmt"

	"github.com/thegalactic-go/lconcept/order"
)

// Presence tags which side(s) of a Concept's (A, B) pair are populated.
type Presence int

const (
	AOnly Presence = iota
	BOnly
	Both
)

func (p Presence) String() string {
	switch p {
	case AOnly:
		return "AOnly"
	case BOnly:
		return "BOnly"
	case Both:
		return "Both"
	default:
		return fmt.Sprintf("Presence(%d)", int(p))
	}
}

// Concept is a pair (A, B) of ordered element sets — an attribute side and
// an observation side — with a Presence tag recording which side(s) are
// populated. A "full" concept (Presence == Both) additionally satisfies
// B = extent(A) and A = intent(B) in some context, but Concept itself
// does not enforce that; it is the lattice builders that guarantee it.
type Concept[E order.Element] struct {
	presence Presence
	a        *order.OrderedSet[E]
	b        *order.OrderedSet[E]
}

// NewAOnly builds a Concept with only the attribute side populated — the
// shape closure.AllClosures produces directly, before any extent is known.
func NewAOnly[E order.Element](a *order.OrderedSet[E]) *Concept[E] {
	return &Concept[E]{presence: AOnly, a: a}
}

// NewBOnly builds a Concept with only the observation side populated.
func NewBOnly[E order.Element](b *order.OrderedSet[E]) *Concept[E] {
	return &Concept[E]{presence: BOnly, b: b}
}

// NewFull builds a Concept with both sides populated.
func NewFull[E order.Element](a, b *order.OrderedSet[E]) *Concept[E] {
	return &Concept[E]{presence: Both, a: a, b: b}
}

// Presence reports which side(s) of c are populated.
func (c *Concept[E]) Presence() Presence { return c.presence }

// HasA reports whether c's attribute side is populated.
func (c *Concept[E]) HasA() bool { return c.presence == AOnly || c.presence == Both }

// HasB reports whether c's observation side is populated.
func (c *Concept[E]) HasB() bool { return c.presence == BOnly || c.presence == Both }

// IsFull reports whether both sides of c are populated.
func (c *Concept[E]) IsFull() bool { return c.presence == Both }

// A returns c's attribute side and whether it is populated.
func (c *Concept[E]) A() (*order.OrderedSet[E], bool) { return c.a, c.HasA() }

// B returns c's observation side and whether it is populated.
func (c *Concept[E]) B() (*order.OrderedSet[E], bool) { return c.b, c.HasB() }

// WithB returns a copy of c with its observation side set to b and its
// presence promoted to Both. Used by lattice.CompleteConcepts, the
// completion pass behind Context.ConceptLattice, which fills in
// B := extent(A) for every node after the diagram or complete lattice has
// been built over A alone.
func (c *Concept[E]) WithB(b *order.OrderedSet[E]) *Concept[E] {
	return &Concept[E]{presence: Both, a: c.a, b: b}
}

// WithA is the mirror of WithB, used when a lattice is built over the
// observation side (e.g. via a reversed context) and the attribute side
// is completed afterward.
func (c *Concept[E]) WithA(a *order.OrderedSet[E]) *Concept[E] {
	return &Concept[E]{presence: Both, a: a, b: c.b}
}

// identitySet returns whichever side determines c's identity: A if
// present, otherwise B. A takes precedence when both are present, since
// the lattice builders key concepts by intent.
func (c *Concept[E]) identitySet() *order.OrderedSet[E] {
	if c.HasA() {
		return c.a
	}
	return c.b
}

// Key returns the canonical map key for c, derived from its identity set.
// Two concepts with the same identity set produce the same Key regardless
// of whether their other side is populated.
func (c *Concept[E]) Key() string { return c.identitySet().Key() }

// Equal reports whether c and other have the same identity.
func (c *Concept[E]) Equal(other *Concept[E]) bool {
	return c.identitySet().Equal(other.identitySet())
}

// String renders c as "A:{...}" / "B:{...}" / "A:{...} B:{...}" depending
// on presence.
func (c *Concept[E]) String() string {
	switch c.presence {
	case AOnly:
		return fmt.Sprintf("A:%s", c.a)
	case BOnly:
		return fmt.Sprintf("B:%s", c.b)
	default:
		return fmt.Sprintf("A:%s B:%s", c.a, c.b)
	}
}
