package closure

import "github.com/thegalactic-go/lconcept/order"

// NextClosure returns the lectically next closed set after x, or (nil,
// false) if x is already the top. Ganter/Wille's algorithm: walk elements
// in descending order; an element already in x gets removed (backing off
// to find where to branch); otherwise test whether adding it and
// re-closing produces a legitimate next step (no smaller element snuck
// into the difference).
//
// This uses an explicit-⊥ termination path rather than a defensive
// duplicate check: Next-Closure is mathematically guaranteed never to
// revisit a closed set, so a contains-based check would only mask a bug
// if one existed.
func NextClosure[E order.Element](sys System[E], x *order.OrderedSet[E]) (*order.OrderedSet[E], bool) {
	less := sys.Elements().Less()
	working := x.Clone()

	for _, e := range sys.Elements().DescendSlice() {
		if working.Contains(e) {
			working.Remove(e)
			continue
		}

		candidate := working.Clone()
		candidate.Add(e)
		y := sys.Closure(candidate)

		diff := y.Difference(working)
		hasSmaller := false
		for _, d := range diff.Slice() {
			if less(d, e) {
				hasSmaller = true
				break
			}
		}
		if !hasSmaller {
			return y, true
		}
	}

	return nil, false
}

// AllClosures returns every closed set of sys exactly once, in strictly
// increasing lectic order, starting from cl(∅).
func AllClosures[E order.Element](sys System[E]) []*order.OrderedSet[E] {
	bottom := sys.Closure(order.NewOrderedSet(sys.Elements().Less()))
	result := []*order.OrderedSet[E]{bottom}

	x := bottom
	for {
		next, ok := NextClosure(sys, x)
		if !ok {
			return result
		}
		result = append(result, next)
		x = next
	}
}
