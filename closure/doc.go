// Package closure provides the closure-system contract and the
// element-level algorithms defined purely in terms of it: Next-Closure
// lectic enumeration, the precedence graph, and reducible-element
// detection. Concrete closure systems (package fcontext's Context,
// package implication's ImplicationalSystem) implement System[E]; every
// algorithm in this package is free-standing over that interface, never
// aware of which concrete system it's driving.
//
// Grounded on the abstract-base-class structure of
// org.thegalactic.lattice.ClosureSystem, reshaped from inheritance
// (elements()/closure() as abstract methods, everything else inherited)
// into the idiomatic Go equivalent: a two-method interface plus
// free functions generic over it.
//
// Complexity:
//   - NextClosure: O(|E|·T_cl) where T_cl is the cost of one Closure call.
//   - AllClosures: O(c·|E|·T_cl) where c is the number of closed sets.
//   - PrecedenceGraph: O(|E|²·T_cl).
//   - ReducibleElements: O(|E|²·T_cl) dominated by its phase-4 closure
//     comparisons.
//
// Errors: none of this package's functions fail; System[E] implementations
// are assumed total over their own element domain.
package closure
