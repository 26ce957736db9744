// Package concept defines Concept, the node type every ConceptLattice is
// built from: a pair (A, B) of element sets — typically an attribute
// intent and an observation extent — with either side optionally absent.
//
// What:
//   - Presence: which side(s) of the pair are populated.
//   - Concept[E]: the pair itself, generic over element type E so the
//     same type serves an attribute-only closure (as produced directly by
//     package closure) and a fully completed (A, B) concept (as produced
//     by package lattice once extents are filled in).
//
// Why a tagged variant and not a struct with nullable fields: under the
// identity rule ("equality is by intent when both sides present, by
// whichever side is present otherwise"), a half-populated Concept is a
// different case, not a struct with a zero-valued field standing in for
// "absent". Presence makes that case explicit instead of relying on the
// caller to remember which pointer might be nil.
package concept
