// Package resolve decides, for each canonical mapping entry, which target
// control primitive it becomes: a symbolic function name, an addressable
// parameter URI, or nothing.
//
// The heuristic is an ordered list of (predicate, outcome) rules evaluated
// top to bottom with a mandatory default rule at the end. Rules are
// deliberately non-exclusive across categories, so their order is a
// load-bearing part of the contract. Resolution is deterministic and total:
// identical inputs always produce identical output, every entry reaches
// exactly one terminal branch, and no rule can fail. An unresolvable entry
// is a normal outcome, not an error.
package resolve
