// Package interest implements the interestingness ordering the search
// engine uses to decide which motif vertex to expand next (spec.md §4.3):
// a scalar priority per motif vertex, higher meaning "expand sooner",
// with deterministic tie-breaking by vertex ID.
package interest
