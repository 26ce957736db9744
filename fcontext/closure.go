package fcontext

import "github.com/thegalactic-go/lconcept/order"

// Elements returns the attribute set, making Context an attribute-side
// closure.System[E]. To drive Next-Closure over observations instead,
// Reverse the context first.
func (c *Context[E]) Elements() *order.OrderedSet[E] {
	return c.Attributes()
}

// Closure returns cl(S) = intent(extent(S)) for an attribute subset S.
func (c *Context[E]) Closure(s *order.OrderedSet[E]) *order.OrderedSet[E] {
	return c.IntentSet(c.ExtentSet(s))
}
