package queue

import (
	"sync"

	"github.com/graphmotif/grandiso/backbone"
)

// Item is the unit of work carried by a Queue: one partial mapping the
// search engine will pop and extend.
type Item = *backbone.Backbone

// Queue is a FIFO/LIFO/priority-agnostic container of partial mappings.
// Implementations need not be safe for concurrent use unless documented
// otherwise (breadthFirst and depthFirst are not; the search engine's
// parallel worker pool wraps whichever policy it uses in its own mutex).
type Queue interface {
	Push(Item)
	Pop() (Item, bool)
	Empty() bool
	Len() int
}

type breadthFirst struct {
	items []Item
}

// NewBreadthFirst returns a Queue with push-tail, pop-head semantics:
// memory grows with the search frontier's width, and early completions
// tend to surface sooner (spec.md §4.4).
func NewBreadthFirst() Queue {
	return &breadthFirst{}
}

func (q *breadthFirst) Push(it Item) { q.items = append(q.items, it) }

func (q *breadthFirst) Pop() (Item, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	it := q.items[0]
	q.items = q.items[1:]
	return it, true
}

func (q *breadthFirst) Empty() bool { return len(q.items) == 0 }
func (q *breadthFirst) Len() int    { return len(q.items) }

type depthFirst struct {
	items []Item
}

// NewDepthFirst returns a Queue with push-tail, pop-tail semantics: memory
// grows with search depth rather than frontier width, which spec.md §4.4
// recommends for large host graphs.
func NewDepthFirst() Queue {
	return &depthFirst{}
}

func (q *depthFirst) Push(it Item) { q.items = append(q.items, it) }

func (q *depthFirst) Pop() (Item, bool) {
	n := len(q.items)
	if n == 0 {
		return nil, false
	}
	it := q.items[n-1]
	q.items = q.items[:n-1]
	return it, true
}

func (q *depthFirst) Empty() bool { return len(q.items) == 0 }
func (q *depthFirst) Len() int    { return len(q.items) }

// concurrentQueue adds a mutex around an inner Queue so it can be shared
// across the parallel worker pool in package search. It is not exported;
// callers get it via Concurrent, since single-threaded callers pay
// needless lock overhead for it.
type concurrentQueue struct {
	mu    sync.Mutex
	inner Queue
}

// Concurrent wraps inner with a mutex so multiple goroutines may Push/Pop
// it safely, per spec.md §5 ("the queue may be shared across N workers
// with atomic pop/push").
func Concurrent(inner Queue) Queue {
	return &concurrentQueue{inner: inner}
}

func (q *concurrentQueue) Push(it Item) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.inner.Push(it)
}

func (q *concurrentQueue) Pop() (Item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inner.Pop()
}

func (q *concurrentQueue) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inner.Empty()
}

func (q *concurrentQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inner.Len()
}
