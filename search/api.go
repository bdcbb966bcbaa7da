package search

import (
	"context"

	"github.com/google/uuid"

	"github.com/graphmotif/grandiso/backbone"
	"github.com/graphmotif/grandiso/graph"
	"github.com/graphmotif/grandiso/interest"
	"github.com/graphmotif/grandiso/match"
	"github.com/graphmotif/grandiso/queue"
)

// UniformNodeInterestingness scores every motif vertex equally, which
// degenerates the interestingness ordering to ascending vertex ID
// (spec.md §4.3, and one of this package's external entry points).
func UniformNodeInterestingness(motif *graph.Graph) interest.Scores {
	return interest.Uniform(motif)
}

func validate(motif, host *graph.Graph) error {
	if motif == nil || host == nil {
		return ErrGraphNil
	}
	if len(motif.Vertices()) == 0 {
		return ErrEmptyMotif
	}
	return nil
}

// resolveDirected settles the effective directedness for a search and
// returns the graphs the engine should actually traverse: either motif
// and host unchanged, or an undirected view of each, per the strategy
// documented on graph.ToUndirectedView.
func resolveDirected(motif, host *graph.Graph, cfg *config) (directed bool, effMotif, effHost *graph.Graph, err error) {
	motifDirected, hostDirected := motif.Directed(), host.Directed()
	if motifDirected != hostDirected {
		return false, nil, nil, ErrDirectedMismatch
	}

	target := motifDirected
	if cfg.directed != nil {
		target = *cfg.directed
	}
	if target && !motifDirected {
		// asked to treat as directed, but neither graph stores direction.
		return false, nil, nil, ErrDirectedMismatch
	}

	if !target && motifDirected {
		return false, graph.ToUndirectedView(motif), graph.ToUndirectedView(host), nil
	}
	return target, motif, host, nil
}

func buildSearcher(motif, host *graph.Graph, opts []Option) (*searcher, *config, error) {
	if err := validate(motif, host); err != nil {
		return nil, nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.interestingness == nil {
		cfg.interestingness = interest.Uniform(motif)
	}

	directed, effMotif, effHost, err := resolveDirected(motif, host, cfg)
	if err != nil {
		return nil, nil, err
	}

	s := &searcher{
		motif:     effMotif,
		host:      effHost,
		motifSize: len(motif.Vertices()),
		scores:    cfg.interestingness,
		directed:  directed,
		cfg:       cfg,
		cache:     match.NewCache(),
	}
	return s, cfg, nil
}

func seedQueue(s *searcher, cfg *config) (queue.Queue, error) {
	var q queue.Queue
	switch cfg.queuePolicy {
	case BreadthFirst:
		q = queue.NewBreadthFirst()
	default:
		q = queue.NewDepthFirst()
	}
	if cfg.instrumented {
		q = queue.NewInstrumented(q, uuid.NewString())
	}

	if len(cfg.hints) == 0 {
		q.Push(backbone.Empty())
		return q, nil
	}
	for _, hint := range cfg.hints {
		b, ok, err := s.validateHint(hint)
		if err != nil {
			return nil, err
		}
		if ok {
			q.Push(b)
		}
	}
	return q, nil
}

// record appends one completion to res, respecting cfg.countOnly, and
// reports whether the run should stop because cfg.limit has been reached.
func record(res *Result, cfg *config, cand Item) (stop bool) {
	res.Count++
	if !cfg.countOnly {
		res.Mappings = append(res.Mappings, cand.ToMap())
	}
	return cfg.limit > 0 && res.Count >= cfg.limit
}

func runSearch(s *searcher, q queue.Queue, cfg *config) (Result, error) {
	res := Result{countOnly: cfg.countOnly}
	for !q.Empty() {
		b, _ := q.Pop()
		cands, err := s.expand(b)
		if err != nil {
			return Result{}, err
		}
		for _, cand := range cands {
			if cand.Len() != s.motifSize {
				q.Push(cand)
				continue
			}
			if record(&res, cfg, cand) {
				return res, nil
			}
		}
	}
	return res, nil
}

// FindMotifs enumerates every mapping from motif's vertices to host's
// vertices that preserves motif's edge structure (a monomorphism), or,
// if WithIsomorphismsOnly was given, that additionally forbids host edges
// with no motif counterpart (an induced isomorphism).
func FindMotifs(motif, host *graph.Graph, opts ...Option) (Result, error) {
	s, cfg, err := buildSearcher(motif, host, opts)
	if err != nil {
		return Result{}, err
	}
	q, err := seedQueue(s, cfg)
	if err != nil {
		return Result{}, err
	}

	if cfg.workers > 1 {
		return runParallel(context.Background(), cfg.workers, s, q, cfg)
	}
	return runSearch(s, q, cfg)
}

// FindMotifsIter behaves like FindMotifs, but returns an Iterator that
// computes one completion at a time, so a caller that only needs the
// first few results (or wants to stop early on some external condition)
// need not pay for the rest of the search. WithLimit and WithCountOnly
// have no effect here: per spec.md §6 the limit is ignored in stream
// mode and left to the consumer, and there is nothing to count without
// materializing mappings.
func FindMotifsIter(motif, host *graph.Graph, opts ...Option) (*Iterator, error) {
	s, cfg, err := buildSearcher(motif, host, opts)
	if err != nil {
		return nil, err
	}
	q, err := seedQueue(s, cfg)
	if err != nil {
		return nil, err
	}
	return &Iterator{s: s, q: q}, nil
}
