package implication

import "github.com/thegalactic-go/lconcept/order"

// Elements returns the system's ground set: every token that has appeared
// in the premise or conclusion of a rule added with AddRule. RemoveRule
// does not shrink it.
func (s *System[E]) Elements() *order.OrderedSet[E] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.elems.Clone()
}

// Closure returns the least fixpoint of S under rule firing: while some
// rule's premise is a subset of the current set, its conclusion is added.
func (s *System[E]) Closure(set *order.OrderedSet[E]) *order.OrderedSet[E] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.closureLocked(set)
}

func (s *System[E]) closureLocked(set *order.OrderedSet[E]) *order.OrderedSet[E] {
	cur := set.Clone()
	for {
		changed := false
		for _, r := range s.rules {
			if r.Premise.Subset(cur) && !r.Conclusion.Subset(cur) {
				cur = cur.Union(r.Conclusion)
				changed = true
			}
		}
		if !changed {
			return cur
		}
	}
}
