package trampoline

import (
	"sync/atomic"
)

// metrics tracks dispatcher activity. All counters are monotonic, updated
// with atomic operations, and always enabled, as each costs a single
// uncontended add on paths that already cross a goroutine registry.
type metrics struct {
	forwarded atomic.Uint64
	batches   atomic.Uint64
	executed  atomic.Uint64
	forks     atomic.Uint64
	failures  atomic.Uint64
}

// Metrics is a point-in-time snapshot of dispatcher activity, retrieved via
// [Dispatcher.Metrics]. Fields are monotonic counts, covering the lifetime
// of the dispatcher.
type Metrics struct {
	// Forwarded counts non-local tasks handed directly to the underlying
	// executor.
	Forwarded uint64

	// Batches counts inline batches established, including batches
	// restarted by the executor after a failure.
	Batches uint64

	// Executed counts local tasks that ran to completion inline.
	Executed uint64

	// Forks counts batch remainders handed to the underlying executor
	// after a task failure.
	Forks uint64

	// Failures counts recoverable task failures. Fatal panics are
	// rethrown, not counted.
	Failures uint64
}

func (m *metrics) snapshot() Metrics {
	return Metrics{
		Forwarded: m.forwarded.Load(),
		Batches:   m.batches.Load(),
		Executed:  m.executed.Load(),
		Forks:     m.forks.Load(),
		Failures:  m.failures.Load(),
	}
}
