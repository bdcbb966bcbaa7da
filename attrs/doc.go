// Package attrs defines the attribute bag attached to every vertex and
// edge in the graph package.
//
// The reference system this engine implements treats attributes as open
// key→value maps over a dynamically typed language. In a statically typed
// rewrite we close that over a small tagged union (Value) instead of
// interface{}, so predicate implementations get compile-time exhaustiveness
// on Kind and equality is a simple switch rather than a reflect.DeepEqual.
package attrs
