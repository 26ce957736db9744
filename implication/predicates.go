package implication

import "github.com/thegalactic-go/lconcept/order"

// IsUnary reports whether every rule's conclusion is a singleton.
func (s *System[E]) IsUnary() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rules {
		if r.Conclusion.Len() != 1 {
			return false
		}
	}

	return true
}

// IsBinary reports whether every rule has at most one premise element and
// at most one conclusion element.
func (s *System[E]) IsBinary() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rules {
		if r.Premise.Len() > 1 || r.Conclusion.Len() > 1 {
			return false
		}
	}

	return true
}

// IsProper reports whether no rule is redundant: removing any single rule
// and recomputing the closure of its own premise under the remaining
// rules would no longer reach its conclusion.
func (s *System[E]) IsProper() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, r := range s.rules {
		without := make([]*Rule[E], 0, len(s.rules)-1)
		for j, other := range s.rules {
			if j != i {
				without = append(without, other)
			}
		}
		reduced := &System[E]{less: s.less, elems: s.elems, rules: without}
		if r.Conclusion.Subset(reduced.closureLocked(r.Premise)) {
			return false
		}
	}

	return true
}

// IsReduced reports whether no two distinct elements are closure-
// equivalent (each implies the other via a singleton premise).
func (s *System[E]) IsReduced() bool {
	s.mu.RLock()
	elems := s.elems.Slice()
	less := s.less
	s.mu.RUnlock()

	for i, e1 := range elems {
		cl1 := s.Closure(order.Of(less, e1))
		for _, e2 := range elems[i+1:] {
			cl2 := s.Closure(order.Of(less, e2))
			if cl1.Contains(e2) && cl2.Contains(e1) {
				return false
			}
		}
	}

	return true
}

// IsDirect reports whether a single sweep through the stored rule order,
// applied to each rule's own premise, already reaches that premise's
// full closure — the practical characterization of "one pass suffices".
func (s *System[E]) IsDirect() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rules {
		if !s.closureLocked(r.Premise).Equal(s.onePassLocked(r.Premise)) {
			return false
		}
	}

	return true
}

func (s *System[E]) onePassLocked(set *order.OrderedSet[E]) *order.OrderedSet[E] {
	cur := set.Clone()
	for _, r := range s.rules {
		if r.Premise.Subset(cur) {
			cur = cur.Union(r.Conclusion)
		}
	}

	return cur
}
