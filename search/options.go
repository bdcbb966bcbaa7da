package search

import (
	"github.com/graphmotif/grandiso/interest"
	"github.com/graphmotif/grandiso/match"
)

// QueuePolicy selects the base work-queue discipline (spec.md §4.4).
type QueuePolicy int

const (
	// DepthFirst pushes to the tail and pops from the tail: memory grows
	// with search depth, and is the engine's default (spec.md §6:
	// "queue_policy=depth_first"), preferred for large host graphs.
	DepthFirst QueuePolicy = iota
	// BreadthFirst pushes to the tail and pops from the head: memory
	// grows with frontier width; useful when early completions matter.
	BreadthFirst
)

// Option configures a FindMotifs/FindMotifsIter invocation.
type Option func(*config)

// config is the resolved, immutable-once-built set of knobs for a single
// search run, in the same functional-options-into-a-struct shape as the
// teacher's BFSOptions/DFSOptions.
type config struct {
	interestingness  interest.Scores
	directed         *bool
	queuePolicy      QueuePolicy
	instrumented     bool
	isomorphismsOnly bool
	hints            []map[string]string
	limit            int // 0 means unlimited
	countOnly        bool
	structuralMatch  match.StructuralMatchFunc
	nodeAttrMatch    match.NodeAttrMatch
	edgeAttrMatch    match.EdgeAttrMatch
	workers          int // 0 or 1 means single-threaded

	err error // first invalid option encountered, surfaced by buildSearcher
}

func defaultConfig() *config {
	return &config{
		queuePolicy:     DepthFirst,
		structuralMatch: match.DefaultStructuralMatch,
		nodeAttrMatch:   match.DefaultNodeAttrMatch,
		edgeAttrMatch:   match.DefaultEdgeAttrMatch,
	}
}

// WithInterestingness overrides the per-motif-vertex expansion priority.
// If omitted, UniformNodeInterestingness is used.
func WithInterestingness(scores interest.Scores) Option {
	return func(c *config) { c.interestingness = scores }
}

// WithDirected overrides whether edges are interpreted as directed. If
// omitted, directedness is inferred from the motif graph.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = &directed }
}

// WithQueuePolicy selects the base work-queue discipline.
func WithQueuePolicy(p QueuePolicy) Option {
	return func(c *config) { c.queuePolicy = p }
}

// WithInstrumented wraps the chosen queue policy with Prometheus queue
// depth/throughput metrics (queue.NewInstrumented), matching spec.md
// §4.4's third policy, "instrumented_wrapping_either".
func WithInstrumented() Option {
	return func(c *config) { c.instrumented = true }
}

// WithIsomorphismsOnly activates induced-isomorphism semantics: motif
// non-edges must correspond to host non-edges between mapped vertices.
func WithIsomorphismsOnly() Option {
	return func(c *config) { c.isomorphismsOnly = true }
}

// WithHints seeds the search from caller-supplied partial mappings
// instead of the automatic size-1 seed. Each hint maps motif vertex IDs
// to host vertex IDs; hints violating any backbone invariant are dropped
// silently (spec.md §9 Open Question, resolved in SPEC_FULL.md §5.7).
func WithHints(hints []map[string]string) Option {
	return func(c *config) { c.hints = hints }
}

// WithLimit stops FindMotifs after n completions. A non-positive n is an
// invalid option. It has no effect on FindMotifsIter: in stream mode the
// consumer decides how many completions to pull, per spec.md §6.
func WithLimit(n int) Option {
	return func(c *config) {
		if n <= 0 {
			c.err = ErrInvalidOption
			return
		}
		c.limit = n
	}
}

// WithCountOnly makes Result carry only a count, not the list of
// mappings, avoiding list allocation.
func WithCountOnly() Option {
	return func(c *config) { c.countOnly = true }
}

// WithNodeStructuralMatch overrides the default degree-compatibility
// structural predicate.
func WithNodeStructuralMatch(fn match.StructuralMatchFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.structuralMatch = fn
		}
	}
}

// WithNodeAttrMatch overrides the default node-attribute predicate.
func WithNodeAttrMatch(fn match.NodeAttrMatch) Option {
	return func(c *config) {
		if fn != nil {
			c.nodeAttrMatch = fn
		}
	}
}

// WithEdgeAttrMatch overrides the default edge-attribute predicate.
func WithEdgeAttrMatch(fn match.EdgeAttrMatch) Option {
	return func(c *config) {
		if fn != nil {
			c.edgeAttrMatch = fn
		}
	}
}

// WithWorkers activates the parallel worker pool of spec.md §5, sharing
// one queue and one attribute cache across n goroutines via errgroup. n<=1
// (the default) runs single-threaded.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.err = ErrInvalidOption
			return
		}
		c.workers = n
	}
}
