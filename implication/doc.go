// Package implication implements ImplicationalSystem, the second concrete
// closure system: a ground set of elements plus a collection of rules
// premise → conclusion, whose closure operator is the least fixpoint
// reached by repeatedly firing any rule whose premise already holds.
//
// What:
//   - Rule[E]: a single premise → conclusion pair.
//   - System[E]: the rule collection plus AddRule/RemoveRule and the
//     System[E] (elements/closure) interface package closure consumes.
//   - Normal-form predicates (IsUnary, IsBinary, IsProper, IsReduced,
//     IsDirect): recognized, never enforced — a caller can build a
//     system that violates every one of them and still get a correct
//     Closure.
//
// System[E] supplies Elements()/Closure() directly, the same way package
// fcontext does, so it satisfies closure.System[E] without an adapter.
//
// Complexity:
//   - Closure: naive fixpoint sweep, O(|R|·|S|·|E|) worst case — "while
//     some rule has premise ⊆ current, add conclusion", rather than a
//     premise-counter linear-time variant.
//   - IsProper/IsReduced: O(|R|²·T_cl) / O(|E|²·T_cl).
//   - IsDirect: O(|R|·T_cl) (one full closure and one pass per rule's
//     premise).
//
// Errors: AddRule reports ErrDuplicateRule via an ordinary error return.
package implication
