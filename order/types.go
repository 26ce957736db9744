// Package order defines Element and OrderedSet.
package order

import (
	"strings"

	"github.com/google/btree"
)

// Element is the type constraint every value stored in an OrderedSet must
// satisfy. It is intentionally narrow: comparable lets us mirror btree
// membership in a plain Go map the way dgraph mirrors adjacency in a map.
type Element interface {
	comparable
}

// Less is an externally supplied total-order comparator for elements of
// type E. Ordering is defined externally and assumed stable for an
// element's lifetime; an order is never inferred from the element type
// itself (no Ordered constraint).
type Less[E Element] func(a, b E) bool

// OrderedSet is a totally-ordered set of elements of type E. It carries the
// ambient element order (via less) plus, implicitly, the lectic order on
// sets derived from that same order (see closure.NextClosure).
//
// Membership is mirrored in a plain map for O(1) presence checks; the
// btree gives O(log n) ordered operations, including first/last via
// Min/Max. Both structures are always kept in sync.
type OrderedSet[E Element] struct {
	less Less[E]
	tree *btree.BTreeG[E]
	mem  map[E]struct{}
}

const btreeDegree = 32

// NewOrderedSet returns an empty OrderedSet using less as the total order.
// Passing a nil less panics: a set with no order cannot support lectic
// comparison, which is a programmer error, not a recoverable one.
func NewOrderedSet[E Element](less Less[E]) *OrderedSet[E] {
	if less == nil {
		panic("order: NewOrderedSet requires a non-nil comparator")
	}

	return &OrderedSet[E]{
		less: less,
		tree: btree.NewG[E](btreeDegree, btree.LessFunc[E](less)),
		mem:  make(map[E]struct{}),
	}
}

// Of builds an OrderedSet containing the given elements (duplicates
// collapse, as for any set).
func Of[E Element](less Less[E], elems ...E) *OrderedSet[E] {
	s := NewOrderedSet(less)
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// Less exposes the set's comparator, so callers building derived sets
// (closures, unions) can reuse the exact same total order.
func (s *OrderedSet[E]) Less() Less[E] { return s.less }

// Len returns the number of elements in s.
func (s *OrderedSet[E]) Len() int { return len(s.mem) }

// Empty reports whether s has no elements.
func (s *OrderedSet[E]) Empty() bool { return len(s.mem) == 0 }

// Contains reports whether e is a member of s. O(1).
func (s *OrderedSet[E]) Contains(e E) bool {
	_, ok := s.mem[e]
	return ok
}

// Add inserts e into s. Adding an already-present element is a no-op.
// O(log n).
func (s *OrderedSet[E]) Add(e E) {
	if _, ok := s.mem[e]; ok {
		return
	}
	s.mem[e] = struct{}{}
	s.tree.ReplaceOrInsert(e)
}

// Remove deletes e from s if present. Removing an absent element is a
// no-op reported via the boolean return rather than an error.
// O(log n). Returns true iff e was present.
func (s *OrderedSet[E]) Remove(e E) bool {
	if _, ok := s.mem[e]; !ok {
		return false
	}
	delete(s.mem, e)
	s.tree.Delete(e)

	return true
}

// First returns the smallest element of s under its comparator.
// The second return value is false if s is empty.
func (s *OrderedSet[E]) First() (E, bool) {
	return s.tree.Min()
}

// Last returns the largest element of s under its comparator.
// The second return value is false if s is empty.
func (s *OrderedSet[E]) Last() (E, bool) {
	return s.tree.Max()
}

// Slice returns the elements of s in ascending order. O(n).
func (s *OrderedSet[E]) Slice() []E {
	out := make([]E, 0, s.Len())
	s.tree.Ascend(func(e E) bool {
		out = append(out, e)
		return true
	})

	return out
}

// DescendSlice returns the elements of s in descending order. O(n).
// Next-Closure walks elements in descending order, so this is exposed
// directly rather than requiring callers to reverse Slice().
func (s *OrderedSet[E]) DescendSlice() []E {
	out := make([]E, 0, s.Len())
	s.tree.Descend(func(e E) bool {
		out = append(out, e)
		return true
	})

	return out
}

// Clone returns an independent copy of s sharing the same comparator.
func (s *OrderedSet[E]) Clone() *OrderedSet[E] {
	out := NewOrderedSet(s.less)
	for e := range s.mem {
		out.Add(e)
	}

	return out
}

// Equal reports whether s and t contain exactly the same elements
// (elementwise equality).
func (s *OrderedSet[E]) Equal(t *OrderedSet[E]) bool {
	if s.Len() != t.Len() {
		return false
	}
	for e := range s.mem {
		if !t.Contains(e) {
			return false
		}
	}

	return true
}

// Subset reports whether every element of s is also in t (s ⊆ t).
func (s *OrderedSet[E]) Subset(t *OrderedSet[E]) bool {
	if s.Len() > t.Len() {
		return false
	}
	for e := range s.mem {
		if !t.Contains(e) {
			return false
		}
	}

	return true
}

// ProperSubset reports whether s ⊊ t (s ⊆ t and s ≠ t).
func (s *OrderedSet[E]) ProperSubset(t *OrderedSet[E]) bool {
	return s.Len() < t.Len() && s.Subset(t)
}

// Union returns a new set containing every element of s or t.
func (s *OrderedSet[E]) Union(t *OrderedSet[E]) *OrderedSet[E] {
	out := s.Clone()
	for e := range t.mem {
		out.Add(e)
	}

	return out
}

// Intersect returns a new set containing every element in both s and t.
func (s *OrderedSet[E]) Intersect(t *OrderedSet[E]) *OrderedSet[E] {
	out := NewOrderedSet(s.less)
	small, big := s, t
	if big.Len() < small.Len() {
		small, big = big, small
	}
	for e := range small.mem {
		if big.Contains(e) {
			out.Add(e)
		}
	}

	return out
}

// Difference returns a new set containing elements of s that are not in t
// (s \ t).
func (s *OrderedSet[E]) Difference(t *OrderedSet[E]) *OrderedSet[E] {
	out := NewOrderedSet(s.less)
	for e := range s.mem {
		if !t.Contains(e) {
			out.Add(e)
		}
	}

	return out
}

// SymmetricDifference returns elements belonging to exactly one of s, t.
// LectOrder's test ("the smallest element in the symmetric difference
// belongs to T") is implemented directly against this.
func (s *OrderedSet[E]) SymmetricDifference(t *OrderedSet[E]) *OrderedSet[E] {
	return s.Difference(t).Union(t.Difference(s))
}

// LectOrder compares s and t under the lectic order induced by less, given
// the ambient enumeration order e1 < e2 < …. It returns -1 if s <_lectic t,
// +1 if t <_lectic s, and 0 if s == t.
//
// Definition: S <_lectic T iff the smallest element in the symmetric
// difference S Δ T belongs to T.
func (s *OrderedSet[E]) LectOrder(t *OrderedSet[E]) int {
	diff := s.SymmetricDifference(t)
	smallest, ok := diff.First()
	if !ok {
		return 0 // S == T
	}
	if t.Contains(smallest) {
		return -1 // s <_lectic t
	}

	return 1 // t <_lectic s
}

// Key returns a canonical string encoding of s suitable for use as a map
// key when deduplicating sets themselves (e.g. the closed-set → concept
// lookup diagramLattice needs). It is exactly String()'s ascending
// rendering; callers should not rely on its exact format beyond
// "identical sets produce identical keys", which holds as long as E's
// default formatting is injective (true for the string and int elements
// this module uses throughout).
func (s *OrderedSet[E]) Key() string { return s.String() }

// String renders s as "{e1, e2, ...}" in ascending order, using fmt-style
// default formatting for each element via %v semantics through
// strings.Builder; this keeps OrderedSet Stringer-friendly without forcing
// E to implement fmt.Stringer.
func (s *OrderedSet[E]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.tree.Ascend(func(e E) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		writeAny(&b, e)
		return true
	})
	b.WriteByte('}')

	return b.String()
}
