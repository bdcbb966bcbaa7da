package search

import "github.com/graphmotif/grandiso/queue"

// Iterator streams completions one at a time from a FindMotifsIter call.
// It holds the search's queue and pulls just enough work to produce the
// next completion, so a caller that stops calling Next leaves the
// remaining search space unexplored. WithLimit is ignored here — the consumer decides how many
// completions to pull, per spec.md §6.
type Iterator struct {
	s       *searcher
	q       queue.Queue
	pending []map[string]string
	err     error
}

// Next returns the next completion, or ok=false once the search space is
// exhausted or a predicate errored (see Err).
func (it *Iterator) Next() (map[string]string, bool) {
	if it.err != nil {
		return nil, false
	}
	for {
		if len(it.pending) > 0 {
			m := it.pending[0]
			it.pending = it.pending[1:]
			return m, true
		}
		if it.q.Empty() {
			return nil, false
		}
		b, _ := it.q.Pop()
		cands, err := it.s.expand(b)
		if err != nil {
			it.err = err
			return nil, false
		}
		for _, cand := range cands {
			if cand.Len() == it.s.motifSize {
				it.pending = append(it.pending, cand.ToMap())
			} else {
				it.q.Push(cand)
			}
		}
	}
}

// Err returns the error that stopped iteration early, if any.
func (it *Iterator) Err() error { return it.err }
