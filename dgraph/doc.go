// Package dgraph implements the directed-graph substrate that the closure
// and lattice packages are built on: node and edge storage, strongly
// connected components, transitive closure and reduction, topological sort,
// sources/sinks, and the induced-subgraph/filter/ideal views a DAG needs.
//
// It is adapted from lvlath/core's Graph — same split-mutex concurrency
// model (muNodes guards the node catalog, muEdges guards edges and
// adjacency), same functional-option construction, same sentinel-error
// policy — generalized from lvlath's Vertex/Edge (string ID + int64
// weight) to an opaque-identifier-plus-content model: nodes carry
// a generic Content payload, edges carry an optional Content of their own.
// A second edge between the same ordered pair is allowed as long as its
// content differs from every edge already on that pair; an edge with the
// same endpoints and the same content is rejected (ErrParallelEdge).
//
// DGraph makes no acyclicity promise. DAGraph wraps a DGraph with a
// runtime-checked acyclicity guarantee and unlocks the operations that only
// make sense on a DAG: TransitiveReduction, Filter, Ideal.
//
// Complexity:
//   - AddNode/RemoveNode/AddEdge/RemoveEdge/ContainsEdge: O(1) amortized.
//   - TransitiveClosure: O(V·E).
//   - TransitiveReduction: O(V·E) (computed against the already-closed
//     reachability relation).
//   - TopologicalSort: O(V+E); ErrHasCycle if the graph is not acyclic.
//   - StronglyConnectedComponents: O(V+E) (Tarjan, single DFS pass).
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound, ErrEdgeNotFound, ErrParallelEdge,
//     ErrSelfLoop are ordinary expected conditions reported via error
//     return, never panics.
//   - ErrHasCycle surfaces an acyclic-operation-on-cyclic-graph programmer
//     error — a broken invariant, not a recoverable condition.
package dgraph
