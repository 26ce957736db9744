// Package order provides the totally-ordered element and ordered-set
// primitives that every closure-system, context, and lattice type in this
// module is built on.
//
// What:
//   - Element: the type-constraint every domain value (an attribute, an
//     observation, a rule token) must satisfy to participate in a closure
//     system.
//   - OrderedSet[E]: a set of elements carrying both a total order on
//     elements and the lectic (lexicographic) order on sets of elements
//     that Next-Closure enumeration depends on.
//
// Why:
//   - Next-Closure correctness depends on O(log n) membership, O(1)
//     first/last access, and a stable comparator across an element's
//     lifetime (see package closure).
//   - google/btree gives balanced-tree membership and ordered iteration;
//     a parallel map mirror gives O(1) "already present" checks during
//     construction, mirroring the dgraph package's adjacency-map idiom.
//
// Complexity:
//   - Add/Remove: O(log n); Contains: O(1) via the map mirror.
//   - First/Last: O(log n) (btree has no O(1) min/max cache; acceptable at
//     this module's scale).
//   - Union/Intersect/Difference: O(n log n).
//
// Errors:
//   - None; OrderedSet operations are total over their domain.
package order
