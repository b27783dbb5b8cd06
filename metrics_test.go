package trampoline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_Metrics_countsActivity(t *testing.T) {
	var ex captureExecutor
	x, err := New(&ex, WithFailureHandler(func(error) {}))
	require.NoError(t, err)

	// one forwarded task
	x.Submit(Task{Runnable: func() {}})
	// one batch of three tasks
	x.Submit(Task{Local: true, Runnable: func() {
		x.Submit(Task{Local: true, Runnable: func() {}})
		x.Submit(Task{Local: true, Runnable: func() {}})
	}})
	// one failing batch, with a forked remainder of one task
	x.Submit(Task{Local: true, Runnable: func() {
		x.Submit(Task{Local: true, Runnable: func() {}})
		panic(`boom`)
	}})

	m := x.Metrics()
	assert.Equal(t, uint64(1), m.Forwarded)
	assert.Equal(t, uint64(2), m.Batches)
	assert.Equal(t, uint64(3), m.Executed, `the failed task must not count as executed`)
	assert.Equal(t, uint64(1), m.Forks)
	assert.Equal(t, uint64(1), m.Failures)

	// resuming the fork establishes another batch and runs the remainder
	require.Equal(t, 2, ex.len())
	ex.tasks[1].Run()
	m = x.Metrics()
	assert.Equal(t, uint64(3), m.Batches)
	assert.Equal(t, uint64(4), m.Executed)
	assert.Equal(t, uint64(1), m.Forwarded, `a fork is not a forward`)
}

func TestDispatcher_Metrics_concurrentReads(t *testing.T) {
	x, err := New(ExecutorFunc(func(task Task) { task.Run() }))
	require.NoError(t, err)

	const goroutines = 4
	var wg sync.WaitGroup
	wg.Add(goroutines * 2)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				x.Submit(Task{Local: true, Runnable: func() {}})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = x.Metrics()
			}
		}()
	}
	wg.Wait()

	m := x.Metrics()
	assert.Equal(t, uint64(goroutines*100), m.Executed)
	assert.Equal(t, uint64(goroutines*100), m.Batches)
}
