// Package lconcept is a library for formal concept analysis: closure
// systems, formal contexts, implicational systems, and the concept
// lattices they generate.
//
// What's inside:
//
//	order/      — Element constraint, OrderedSet[E], lectic order
//	dgraph/     — directed graphs and DAGs: SCC, transitive closure &
//	              reduction, topological sort
//	concept/    — Concept[E]: a formal concept as (intent, extent) or
//	              either half alone
//	closure/    — the ClosureSystem contract, Next-Closure enumeration,
//	              precedence graphs, reducible-element detection
//	fcontext/   — Context[E]: a bitset-backed binary relation between
//	              observations and attributes
//	implication/— rule-based closure systems and their normal forms
//	lattice/    — concept lattice builders: the fully transitive lattice
//	              and Bordat's direct Hasse diagram construction
//	serialize/  — context/implication text formats, Graphviz DOT output,
//	              and interop/ adapters to gonum/graph and dominikbraun/graph
//
// A typical walk starts from a Context, builds its concept lattice, and
// inspects the result:
//
//	ctx := fcontext.New[string](order.StringLess)
//	ctx.AddObservation("o1")
//	ctx.AddAttribute("a1")
//	ctx.AddRelation("o1", "a1")
//	lat := ctx.ConceptLattice(true) // Bordat's Hasse diagram
//
// Everything in this module is generic over order.Element, the narrow
// comparable constraint plus an externally supplied comparator — element
// order is never inferred from the type itself.
package lconcept
