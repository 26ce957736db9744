package fcontext

import (
	"errors"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/thegalactic-go/lconcept/order"
)

var (
	ErrAttributeExists     = errors.New("fcontext: attribute already exists")
	ErrObservationExists   = errors.New("fcontext: observation already exists")
	ErrAttributeNotFound   = errors.New("fcontext: attribute not found")
	ErrObservationNotFound = errors.New("fcontext: observation not found")
)

// Context is a formal context: a tuple (O, A, I) of observations,
// attributes, and a binary relation I ⊆ O × A between them.
//
// The relation is stored twice: once as the ground-truth adjacency
// (rel, keyed by observation) and once as a positional bitset cache
// (bsIntent/bsExtent, keyed the same way but indexed by the current
// arrA/arrO positions). Every structural mutation (attribute/observation
// add or remove) invalidates element positions, so it triggers a full
// rebuild of the cache rather than an incremental patch — a reasonable
// tradeoff since this module's contexts are built once, mutated
// occasionally, and then queried many times by Closure during
// Next-Closure enumeration.
type Context[E order.Element] struct {
	mu sync.RWMutex

	less  order.Less[E]
	obs   *order.OrderedSet[E]
	attrs *order.OrderedSet[E]
	rel   map[E]map[E]bool // observation -> attribute -> true

	arrO     []E
	arrA     []E
	idxO     map[E]int
	idxA     map[E]int
	bsIntent map[E]*bitset.BitSet // observation -> bits over attribute positions
	bsExtent map[E]*bitset.BitSet // attribute -> bits over observation positions
}

// New returns an empty Context using less as the total order on both
// observations and attributes.
func New[E order.Element](less order.Less[E]) *Context[E] {
	c := &Context[E]{
		less:  less,
		obs:   order.NewOrderedSet(less),
		attrs: order.NewOrderedSet(less),
		rel:   make(map[E]map[E]bool),
	}
	c.rebuild()

	return c
}

// rebuild recomputes the positional arrays and bitset cache from obs,
// attrs, and rel. Called after every structural mutation; must leave the
// cache fully coherent with the ground truth before any caller-visible
// method returns.
func (c *Context[E]) rebuild() {
	c.arrO = c.obs.Slice()
	c.arrA = c.attrs.Slice()

	c.idxO = make(map[E]int, len(c.arrO))
	for i, o := range c.arrO {
		c.idxO[o] = i
	}
	c.idxA = make(map[E]int, len(c.arrA))
	for i, a := range c.arrA {
		c.idxA[a] = i
	}

	c.bsIntent = make(map[E]*bitset.BitSet, len(c.arrO))
	for _, o := range c.arrO {
		c.bsIntent[o] = bitset.New(uint(len(c.arrA)))
	}
	c.bsExtent = make(map[E]*bitset.BitSet, len(c.arrA))
	for _, a := range c.arrA {
		c.bsExtent[a] = bitset.New(uint(len(c.arrO)))
	}

	for o, as := range c.rel {
		for a := range as {
			if ia, ok := c.idxA[a]; ok {
				c.bsIntent[o].Set(uint(ia))
			}
			if io, ok := c.idxO[o]; ok {
				c.bsExtent[a].Set(uint(io))
			}
		}
	}
}
