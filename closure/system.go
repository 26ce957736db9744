package closure

import "github.com/thegalactic-go/lconcept/order"

// System is the closure-system contract: a ground set of Elements and a
// Closure operator over them. Implementations must satisfy, for every S
// and T drawn from subsets of Elements():
//
//   - extensive: S ⊆ Closure(S)
//   - monotone:  S ⊆ T ⇒ Closure(S) ⊆ Closure(T)
//   - idempotent: Closure(Closure(S)) = Closure(S)
//
// Every algorithm in this package (NextClosure, AllClosures,
// PrecedenceGraph, ReducibleElements) is defined purely in terms of these
// two methods and makes no other assumption about the concrete system.
type System[E order.Element] interface {
	// Elements returns the system's ground set, in its ambient total
	// order. Implementations should return the same comparator instance
	// on every call so callers can safely build derived sets with it.
	Elements() *order.OrderedSet[E]

	// Closure returns cl(s). Must be extensive, monotone, and idempotent.
	Closure(s *order.OrderedSet[E]) *order.OrderedSet[E]
}
