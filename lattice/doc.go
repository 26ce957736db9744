// Package lattice builds a ConceptLattice — a DAGraph of Concept nodes
// ordered by set inclusion on intents — from any closure.System.
//
// What:
//   - CompleteLattice: enumerate every closed set via Next-Closure, then
//     add every inclusion edge (O(c²) pairwise comparisons). Produces the
//     fully transitive lattice.
//   - DiagramLattice: Bordat's incremental worklist construction. Produces
//     the Hasse diagram directly — no transitive-reduction pass needed —
//     by partitioning each concept's uncovered elements by closure
//     equivalence and keeping the minimal classes, which are its
//     immediate successors (covers).
//   - CompleteConcepts: given a lattice built over attribute-only
//     concepts, fill in the observation side of every node, producing
//     full concepts. Package fcontext's Context.ConceptLattice wires this
//     to Context.ExtentSet.
//
// Grounded on bfs's breadth-first worklist idiom: Bordat's algorithm is a
// worklist traversal with a visited-set keyed by closed-set identity,
// structurally identical to a graph BFS keyed by node instead of closed
// set.
//
// Complexity:
//   - CompleteLattice: O(c·|E|·T_cl) for enumeration plus O(c²) for the
//     inclusion-edge pass.
//   - DiagramLattice: O(c·|E|·T_cl), no post-processing — the cover
//     partition produces the Hasse diagram directly.
//
// Errors: builders never fail on their own; any DAG-acyclicity check
// (dgraph.AsDAG) is structurally guaranteed to succeed, since a concept
// lattice's intent-inclusion order has no cycles by definition — a
// failure there would mean a closure.System implementation violated
// extensivity/monotonicity/idempotence, a programmer error surfaced as a
// panic rather than a returned error.
package lattice
