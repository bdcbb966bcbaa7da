// Package match implements the two pluggable predicates the search engine
// consults when deciding whether a host vertex or edge may extend a
// backbone: a structural predicate (degree compatibility, spec.md §4.2)
// and an attribute predicate (node/edge attribute compatibility). It also
// provides Cache, the per-search memoization table that spec.md §3 and §5
// require; the search engine uses it for both the node- and the
// edge-attribute predicate.
package match
