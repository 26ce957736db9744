// Package fcontext implements Context, the concrete closure system over a
// binary relation between observations and attributes — the O(o,a)∈I
// incidence table Formal Concept Analysis starts from.
//
// Named fcontext rather than context to avoid shadowing the standard
// library's context package; every Context in this module is this type.
//
// What:
//   - Context[E]: the (O, A, I) tuple, with bitset-accelerated intent/
//     extent queries.
//   - Mutations (AddAttribute, AddObservation, RemoveAttribute,
//     RemoveObservation, AddRelation, RemoveRelation) that always restore
//     array/bitset coherence before returning.
//   - Reverse/Reversed, swapping the observation and attribute roles.
//   - ReduceAttributes/ReduceObservations/Reduce, which delegate to
//     package closure's ReducibleElements and physically remove what it
//     finds.
//
// Why bitsets: intent(S) and extent(S) are intersections over a
// potentially large family of sets; AND-ing bitsets is a small constant
// factor (1/w, the machine word width) over the naive set-intersection
// loop order.OrderedSet already provides, which matters because Closure
// calls intent/extent on every NextClosure step.
//
// Closure is defined directly as cl(S) = intent(extent(S)), and every
// mutation here follows the same eager-rebuild style used throughout
// this module's graph package: adjacency/positional indices are always
// left consistent before a method returns, never patched lazily.
//
// Complexity:
//   - Intent/Extent (single element): O(1) map lookup plus an
//     OrderedSet clone.
//   - IntentSize/ExtentSize: O(|A|/w) / O(|O|/w) via bitset cardinality.
//   - Closure: O(|O|·|A|) worst case; the bitset AND chain keeps the
//     constant factor small.
//   - AddRelation/RemoveRelation: O(1) (single bit flip on each side).
//   - AddAttribute/AddObservation/RemoveAttribute/RemoveObservation:
//     O(|O|+|A|) to rebuild the positional arrays and bitsets.
//
// Errors:
//   - ErrAttributeExists/ErrObservationExists/ErrAttributeNotFound/
//     ErrObservationNotFound are ordinary expected conditions reported
//     via error returns, never panics.
package fcontext
