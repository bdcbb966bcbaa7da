package queue

import "github.com/prometheus/client_golang/prometheus"

var (
	depthGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "grandiso",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Current number of backbones waiting in the search queue.",
	}, []string{"run_id"})

	pushCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grandiso",
		Subsystem: "queue",
		Name:      "pushes_total",
		Help:      "Total number of backbones pushed onto the search queue.",
	}, []string{"run_id"})

	popCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grandiso",
		Subsystem: "queue",
		Name:      "pops_total",
		Help:      "Total number of backbones popped off the search queue.",
	}, []string{"run_id"})
)

func init() {
	prometheus.MustRegister(depthGauge, pushCounter, popCounter)
}

// instrumented wraps another Queue, recording its depth over time and its
// push/pop throughput as Prometheus metrics, generalizing the reference
// implementation's ProfilingQueue (original_source/grandiso/queues.py)
// into metrics a real monitoring stack can scrape (spec.md §4.4:
// "records queue size over time for profiling").
type instrumented struct {
	inner Queue
	runID string
}

// NewInstrumented wraps inner, labeling every metric it emits with runID
// so multiple concurrent searches sharing a process don't collide in the
// default Prometheus registry. The search package passes a fresh UUID per
// search run.
func NewInstrumented(inner Queue, runID string) Queue {
	return &instrumented{inner: inner, runID: runID}
}

func (q *instrumented) Push(it Item) {
	q.inner.Push(it)
	pushCounter.WithLabelValues(q.runID).Inc()
	depthGauge.WithLabelValues(q.runID).Set(float64(q.inner.Len()))
}

func (q *instrumented) Pop() (Item, bool) {
	it, ok := q.inner.Pop()
	if ok {
		popCounter.WithLabelValues(q.runID).Inc()
		depthGauge.WithLabelValues(q.runID).Set(float64(q.inner.Len()))
	}
	return it, ok
}

func (q *instrumented) Empty() bool { return q.inner.Empty() }
func (q *instrumented) Len() int    { return q.inner.Len() }
