package search

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for FindMotifs/FindMotifsIter, per spec.md §7 "Invalid
// input" error kind. Invalid hints have no sentinel: they are dropped
// silently (see WithHints).
var (
	// ErrGraphNil is returned when motif or host is nil.
	ErrGraphNil = errors.New("search: motif and host graphs must not be nil")

	// ErrEmptyMotif is returned when the motif has no vertices at all.
	ErrEmptyMotif = errors.New("search: motif has no vertices")

	// ErrDirectedMismatch is returned when motif and host were built with
	// different directedness (checked before any WithDirected override is
	// applied, so an override does not reconcile them), or when a
	// WithDirected(true) override is requested against an underlying
	// undirected graph (there is no direction information to recover).
	ErrDirectedMismatch = errors.New("search: motif and host directedness do not agree")

	// ErrInvalidOption is returned when an option was given a value the
	// engine cannot act on (e.g. a negative limit).
	ErrInvalidOption = errors.New("search: invalid option")
)

// PredicateError wraps a panic or error raised by a caller-supplied
// predicate (structural, node-attribute, or edge-attribute match
// function), attaching the backbone that was being extended when the
// predicate failed, per spec.md §7: "any exception from a predicate
// aborts the search and propagates to the caller with the backbone
// context attached."
type PredicateError struct {
	// Backbone is the partial mapping under extension when the predicate
	// failed, as motif-vertex-ID -> host-vertex-ID.
	Backbone map[string]string
	// Err is the value the predicate panicked with — used as-is if it is
	// an error, otherwise formatted into one — wrapped with a stack trace.
	// Predicates in this engine's contract return bool, so a panic is the
	// only way one "throws".
	Err error
}

func (e *PredicateError) Error() string {
	return fmt.Sprintf("search: predicate failed at backbone %v: %v", e.Backbone, e.Err)
}

func (e *PredicateError) Unwrap() error { return e.Err }

func newPredicateError(b map[string]string, cause interface{}) *PredicateError {
	err, ok := cause.(error)
	if !ok {
		err = fmt.Errorf("%v", cause)
	}
	return &PredicateError{Backbone: b, Err: errors.WithStack(err)}
}
