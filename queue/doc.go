// Package queue implements the Work Queue Abstraction (spec.md §4.4): a
// container of partial mappings with pluggable push/pop policy. The search
// engine never relies on any ordering guarantee beyond what the chosen
// policy implies (spec.md §4.5.4's completeness/non-duplication argument
// holds regardless of queue order).
//
// Two base policies are provided: NewBreadthFirst (push-tail, pop-head)
// and NewDepthFirst (push-tail, pop-tail). NewInstrumented wraps either
// (or any Queue) to record queue depth and throughput as Prometheus
// metrics, generalizing the reference implementation's in-process
// size-history list (original_source/grandiso/queues.py's ProfilingQueue)
// into something a real monitoring stack can consume.
package queue
