package queue_test

import (
	"testing"

	"github.com/graphmotif/grandiso/backbone"
	"github.com/graphmotif/grandiso/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n int) []queue.Item {
	out := make([]queue.Item, n)
	b := backbone.Empty()
	for i := 0; i < n; i++ {
		b = b.Extend(string(rune('a'+i)), string(rune('A'+i)))
		out[i] = b
	}
	return out
}

func TestBreadthFirstIsFIFO(t *testing.T) {
	q := queue.NewBreadthFirst()
	in := items(3)
	for _, it := range in {
		q.Push(it)
	}

	for _, want := range in {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Same(t, want, got)
	}
	assert.True(t, q.Empty())
}

func TestDepthFirstIsLIFO(t *testing.T) {
	q := queue.NewDepthFirst()
	in := items(3)
	for _, it := range in {
		q.Push(it)
	}

	for i := len(in) - 1; i >= 0; i-- {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Same(t, in[i], got)
	}
	assert.True(t, q.Empty())
}

func TestPopEmptyReturnsFalse(t *testing.T) {
	q := queue.NewBreadthFirst()
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestInstrumentedDelegates(t *testing.T) {
	q := queue.NewInstrumented(queue.NewDepthFirst(), "test-run")
	in := items(2)
	for _, it := range in {
		q.Push(it)
	}
	assert.Equal(t, 2, q.Len())

	got, ok := q.Pop()
	require.True(t, ok)
	assert.Same(t, in[1], got)
	assert.Equal(t, 1, q.Len())
}

func TestConcurrentQueueIsSafeUnderRace(t *testing.T) {
	q := queue.Concurrent(queue.NewBreadthFirst())
	done := make(chan struct{})
	b := backbone.Empty().Extend("m", "h")

	go func() {
		for i := 0; i < 1000; i++ {
			q.Push(b)
		}
		close(done)
	}()
	for i := 0; i < 1000; i++ {
		q.Pop()
	}
	<-done
	for !q.Empty() {
		q.Pop()
	}
	assert.True(t, q.Empty())
}
