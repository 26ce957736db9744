package fcontext

import (
	"github.com/thegalactic-go/lconcept/closure"
	"github.com/thegalactic-go/lconcept/order"
)

// ReduceAttributes finds closure-equivalent attributes via
// closure.ReducibleElements and physically removes every reducible one,
// returning the map of removed attribute → its equivalence class.
func (c *Context[E]) ReduceAttributes() map[E]*order.OrderedSet[E] {
	red := closure.ReducibleElements[E](c)
	for a := range red {
		_ = c.RemoveAttribute(a) // a came from Elements(), so it is always present
	}

	return red
}

// ReduceObservations is attribute reduction performed on the reverse of
// c: reverse in place, reduce attributes (which are now the previously-
// declared observations), then reverse back. This avoids a second,
// parallel observation-side reduction algorithm.
func (c *Context[E]) ReduceObservations() map[E]*order.OrderedSet[E] {
	c.Reverse()
	red := c.ReduceAttributes()
	c.Reverse()

	return red
}

// Reduce performs both ReduceObservations and ReduceAttributes, returning
// the combined map of every removed element → its equivalence class.
func (c *Context[E]) Reduce() map[E]*order.OrderedSet[E] {
	out := make(map[E]*order.OrderedSet[E])
	for e, eq := range c.ReduceObservations() {
		out[e] = eq
	}
	for e, eq := range c.ReduceAttributes() {
		out[e] = eq
	}

	return out
}
