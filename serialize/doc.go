// Package serialize provides thin, stateless readers and writers for the
// text formats used by package fcontext (formal contexts), package
// implication (implicational systems), and package dgraph (Graphviz DOT).
//
// Every format lives behind the same two generic interfaces, Reader[T] and
// Writer[T], so Registry can dispatch by file extension without knowing the
// concrete domain type. Readers and writers carry no state of their own:
// a Registry is a value the caller constructs and threads through, never a
// hidden package-level singleton, consistent with how the rest of this
// module avoids global mutable state (dgraph's per-graph config,
// fcontext's per-context locks).
package serialize
