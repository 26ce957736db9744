package implication

import (
	"errors"
	"sync"

	"github.com/thegalactic-go/lconcept/order"
)

var ErrDuplicateRule = errors.New("implication: duplicate rule")

// Rule is a single premise → conclusion production.
type Rule[E order.Element] struct {
	Premise    *order.OrderedSet[E]
	Conclusion *order.OrderedSet[E]
}

func (r *Rule[E]) key() string {
	return r.Premise.Key() + "->" + r.Conclusion.Key()
}

// System is an implicational closure system: a ground set of elements
// (every token that has appeared in an added rule) plus a set of rules.
// Satisfies closure.System[E] directly.
type System[E order.Element] struct {
	mu    sync.RWMutex
	less  order.Less[E]
	elems *order.OrderedSet[E]
	rules []*Rule[E]
	seen  map[string]bool // rule key -> present, enforces the non-duplicated invariant
}

// New returns an empty ImplicationalSystem using less as the total order
// on elements.
func New[E order.Element](less order.Less[E]) *System[E] {
	return &System[E]{
		less:  less,
		elems: order.NewOrderedSet(less),
		seen:  make(map[string]bool),
	}
}

// AddRule adds premise → conclusion. Errors with ErrDuplicateRule if an
// identical rule (same premise and conclusion) already exists — rules
// are non-duplicated, by invariant.
func (s *System[E]) AddRule(premise, conclusion *order.OrderedSet[E]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &Rule[E]{Premise: premise.Clone(), Conclusion: conclusion.Clone()}
	k := r.key()
	if s.seen[k] {
		return ErrDuplicateRule
	}
	s.seen[k] = true
	s.rules = append(s.rules, r)

	for _, e := range premise.Slice() {
		s.elems.Add(e)
	}
	for _, e := range conclusion.Slice() {
		s.elems.Add(e)
	}

	return nil
}

// RemoveRule deletes the rule premise → conclusion, if present. Returns
// true iff a rule was removed.
func (s *System[E]) RemoveRule(premise, conclusion *order.OrderedSet[E]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := (&Rule[E]{Premise: premise, Conclusion: conclusion}).key()
	if !s.seen[k] {
		return false
	}
	delete(s.seen, k)

	out := s.rules[:0]
	for _, r := range s.rules {
		if r.key() != k {
			out = append(out, r)
		}
	}
	s.rules = out

	return true
}

// Rules returns a copy of every rule currently in the system.
func (s *System[E]) Rules() []*Rule[E] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Rule[E], len(s.rules))
	copy(out, s.rules)

	return out
}
