package closure

import (
	"sort"

	"github.com/thegalactic-go/lconcept/order"
)

// ReducibleElements identifies elements whose removal leaves the concept
// lattice unchanged up to isomorphism, mapping each reducible element to
// its equivalence class. Proceeds phase by phase: each phase excludes the
// elements it marks reducible ("rubbish bin") from every later phase's
// consideration.
//
// Phase 1: build the precedence graph.
// Phase 2: within each strongly connected component of size > 1, the
// minimum element (by sys's element order) survives as representative;
// every other member is reducible with equivalence {representative}.
// Phase 3: if, after phase 2's removals, exactly one sink node remains,
// it is reducible with equivalence ∅. Multiple remaining sinks get no
// special handling — this phase is then a no-op.
// Phase 4: for each surviving node x with ≥ 2 surviving predecessors P,
// x is reducible with equivalence P iff Closure({x}) = Closure(P).
func ReducibleElements[E order.Element](sys System[E]) map[E]*order.OrderedSet[E] {
	less := sys.Elements().Less()
	g := PrecedenceGraph(sys)

	idToElem := make(map[string]E)
	survivor := make(map[string]bool)
	for _, n := range g.Nodes() {
		idToElem[n.ID] = n.Content
		survivor[n.ID] = true
	}

	reducible := make(map[E]*order.OrderedSet[E])

	// Phase 2.
	condensation := g.StronglyConnectedComponents()
	for _, cn := range condensation.Nodes() {
		members := cn.Content.Slice()
		if len(members) <= 1 {
			continue
		}

		repID, repElem := members[0], idToElem[members[0]]
		for _, id := range members[1:] {
			e := idToElem[id]
			if less(e, repElem) {
				repID, repElem = id, e
			}
		}
		for _, id := range members {
			if id == repID {
				continue
			}
			reducible[idToElem[id]] = order.Of(less, repElem)
			delete(survivor, id)
		}
	}

	// Phase 3.
	var sinks []string
	for id := range survivor {
		isSink := true
		for _, to := range g.Successors(id) {
			if survivor[to] {
				isSink = false
				break
			}
		}
		if isSink {
			sinks = append(sinks, id)
		}
	}
	if len(sinks) == 1 {
		reducible[idToElem[sinks[0]]] = order.NewOrderedSet(less)
		delete(survivor, sinks[0])
	}

	// Phase 4. Sort survivors for deterministic evaluation order (the
	// outcome per node does not depend on other nodes' phase-4 verdicts,
	// but deterministic iteration keeps results reproducible across runs).
	remaining := make([]string, 0, len(survivor))
	for id := range survivor {
		remaining = append(remaining, id)
	}
	sort.Strings(remaining)

	for _, id := range remaining {
		var preds []string
		for _, from := range g.Predecessors(id) {
			if survivor[from] {
				preds = append(preds, from)
			}
		}
		if len(preds) < 2 {
			continue
		}

		predSet := order.NewOrderedSet(less)
		for _, p := range preds {
			predSet.Add(idToElem[p])
		}

		x := idToElem[id]
		clX := sys.Closure(order.Of(less, x))
		clP := sys.Closure(predSet)
		if clX.Equal(clP) {
			reducible[x] = predSet
		}
	}

	return reducible
}
