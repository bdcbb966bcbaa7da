package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/graphmotif/grandiso/queue"
)

// runParallel drains q using n worker goroutines that share one queue and
// one match.Cache, the optional parallel worker pool of spec.md §5.
// Workers coordinate termination through pending, a count of backbones
// that have been pushed but not yet expanded: a worker that finds the
// queue momentarily empty only gives up once pending reaches zero,
// otherwise another worker is still about to push more work.
func runParallel(ctx context.Context, n int, s *searcher, q queue.Queue, cfg *config) (Result, error) {
	shared := queue.Concurrent(q)

	var pending atomic.Int64
	pending.Add(int64(shared.Len()))

	var mu sync.Mutex
	res := Result{countOnly: cfg.countOnly}
	limitReached := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return cfg.limit > 0 && res.Count >= cfg.limit
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				default:
				}
				if limitReached() {
					return nil
				}

				b, ok := shared.Pop()
				if !ok {
					if pending.Load() == 0 {
						return nil
					}
					time.Sleep(50 * time.Microsecond)
					continue
				}

				cands, err := s.expand(b)
				if err != nil {
					return err
				}

				for _, cand := range cands {
					if cand.Len() != s.motifSize {
						shared.Push(cand)
						pending.Add(1)
						continue
					}
					mu.Lock()
					if !(cfg.limit > 0 && res.Count >= cfg.limit) {
						record(&res, cfg, cand)
					}
					mu.Unlock()
				}
				pending.Add(-1)
			}
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}
