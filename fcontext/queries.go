package fcontext

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/thegalactic-go/lconcept/order"
)

// Intent returns the attributes related to o. Unknown observations yield
// an empty set rather than an error.
func (c *Context[E]) Intent(o E) *order.OrderedSet[E] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := order.NewOrderedSet(c.less)
	as, ok := c.rel[o]
	if !ok {
		return out
	}
	for a := range as {
		out.Add(a)
	}

	return out
}

// Extent returns the observations related to a. Unknown attributes yield
// an empty set.
func (c *Context[E]) Extent(a E) *order.OrderedSet[E] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := order.NewOrderedSet(c.less)
	bs, ok := c.bsExtent[a]
	if !ok {
		return out
	}
	for i, o := range c.arrO {
		if bs.Test(uint(i)) {
			out.Add(o)
		}
	}

	return out
}

// IntentSet returns ⋂_{o ∈ S} intent(o), the attributes common to every
// observation in S. An empty S yields every declared attribute (the
// intersection over an empty family is the universal set), matching the
// closure operator's cl(∅) = intent(extent(∅)) = intent(O) = A case.
func (c *Context[E]) IntentSet(s *order.OrderedSet[E]) *order.OrderedSet[E] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s.Empty() {
		return c.attrs.Clone()
	}

	var acc *bitset.BitSet
	for _, o := range s.Slice() {
		bs, ok := c.bsIntent[o]
		if !ok {
			return order.NewOrderedSet(c.less) // unknown observation contributes ∅ intent; intersection collapses
		}
		if acc == nil {
			acc = bs.Clone()
		} else {
			acc.InPlaceIntersection(bs)
		}
	}

	out := order.NewOrderedSet(c.less)
	for i, a := range c.arrA {
		if acc.Test(uint(i)) {
			out.Add(a)
		}
	}

	return out
}

// ExtentSet returns ⋂_{a ∈ S} extent(a). An empty S yields every declared
// observation.
func (c *Context[E]) ExtentSet(s *order.OrderedSet[E]) *order.OrderedSet[E] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s.Empty() {
		return c.obs.Clone()
	}

	var acc *bitset.BitSet
	for _, a := range s.Slice() {
		bs, ok := c.bsExtent[a]
		if !ok {
			return order.NewOrderedSet(c.less)
		}
		if acc == nil {
			acc = bs.Clone()
		} else {
			acc.InPlaceIntersection(bs)
		}
	}

	out := order.NewOrderedSet(c.less)
	for i, o := range c.arrO {
		if acc.Test(uint(i)) {
			out.Add(o)
		}
	}

	return out
}

// IntentSize returns |intent(o)| via bitset cardinality, O(|A|/w).
func (c *Context[E]) IntentSize(o E) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	bs, ok := c.bsIntent[o]
	if !ok {
		return 0
	}

	return int(bs.Count())
}

// ExtentSize returns |extent(a)| via bitset cardinality, O(|O|/w).
func (c *Context[E]) ExtentSize(a E) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	bs, ok := c.bsExtent[a]
	if !ok {
		return 0
	}

	return int(bs.Count())
}

// Observations returns the declared observation set.
func (c *Context[E]) Observations() *order.OrderedSet[E] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.obs.Clone()
}

// Attributes returns the declared attribute set.
func (c *Context[E]) Attributes() *order.OrderedSet[E] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.attrs.Clone()
}
