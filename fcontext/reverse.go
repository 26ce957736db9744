package fcontext

// Reverse swaps the observation and attribute roles of c in place: what
// was intent becomes extent and vice versa. Implemented as a pointer
// swap of the already-built caches (obs/attrs, arrO/arrA, idxO/idxA,
// bsIntent/bsExtent) — no rebuild needed, since the relation itself is
// unchanged, only which side is "observations" and which is "attributes".
//
// rel is keyed by observation, so it alone needs rebuilding into the
// opposite shape; everything else is an O(1) field exchange.
func (c *Context[E]) Reverse() {
	c.mu.Lock()
	defer c.mu.Unlock()

	newRel := make(map[E]map[E]bool, len(c.arrA))
	for _, a := range c.arrA {
		newRel[a] = make(map[E]bool)
	}
	for o, as := range c.rel {
		for a := range as {
			newRel[a][o] = true
		}
	}
	c.rel = newRel

	c.obs, c.attrs = c.attrs, c.obs
	c.arrO, c.arrA = c.arrA, c.arrO
	c.idxO, c.idxA = c.idxA, c.idxO
	c.bsIntent, c.bsExtent = c.bsExtent, c.bsIntent
}

// Reversed returns an independent copy of c with observations and
// attributes swapped, leaving c untouched.
func (c *Context[E]) Reversed() *Context[E] {
	c.mu.RLock()
	cp := c.clone()
	c.mu.RUnlock()

	cp.Reverse()

	return cp
}

// clone returns an independent deep copy of c. Callers must hold at least
// a read lock on c for the duration.
func (c *Context[E]) clone() *Context[E] {
	cp := New(c.less)
	for _, o := range c.arrO {
		cp.obs.Add(o)
	}
	for _, a := range c.arrA {
		cp.attrs.Add(a)
	}
	for o, as := range c.rel {
		cp.rel[o] = make(map[E]bool, len(as))
		for a := range as {
			cp.rel[o][a] = true
		}
	}
	cp.rebuild()

	return cp
}
