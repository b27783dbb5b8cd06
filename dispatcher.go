package trampoline

import (
	"errors"
	"log"
	"runtime"
	"slices"
	"sync"

	"github.com/joeycumines/logiface"
)

// Dispatcher wraps an [Executor], batching local tasks for inline execution
// on the goroutine that submitted them, with bounded stack usage, while
// forwarding everything else to the executor untouched.
//
// Use [New] to create a Dispatcher. See [Dispatcher.Submit] for the batching
// and failure semantics.
type Dispatcher struct {
	// Prevent copying
	_ [0]func()

	executor        Executor
	logger          *logiface.Logger[logiface.Event]
	failureHandler  func(error)
	fatalClassifier func(error) bool

	// batching maps goroutine id (uint64) to the *batch established on
	// that goroutine. Each entry is only ever accessed by its own
	// goroutine, aside from the id-keyed load/store/delete.
	batching sync.Map

	metrics metrics
}

// batch holds the queued work of one goroutine's inline batch. It is only
// ever accessed by the goroutine it was established on.
type batch struct {
	// established is the work list being drained, in FIFO order. Entries
	// below head have already executed, and are zeroed.
	established []Task
	head        int

	// nested collects tasks submitted while the batch is running, drained
	// most recently submitted first, once established empties.
	nested []Task
}

// batchPool recycles batch queues across establishments.
var batchPool = sync.Pool{
	New: func() any {
		return &batch{}
	},
}

// New creates a Dispatcher around executor.
//
// A nil executor is an error. Options are applied in order, and nil options
// are ignored.
func New(executor Executor, opts ...Option) (*Dispatcher, error) {
	if executor == nil {
		return nil, errors.New(`trampoline: nil executor`)
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	x := &Dispatcher{
		executor:        executor,
		logger:          cfg.logger,
		failureHandler:  cfg.failureHandler,
		fatalClassifier: cfg.fatalClassifier,
	}
	if x.failureHandler == nil {
		x.failureHandler = x.logFailure
	}
	if x.fatalClassifier == nil {
		x.fatalClassifier = fatalByDefault
	}
	return x, nil
}

// Submit runs or schedules task, depending on its [Task.Local] flag.
//
// Non-local tasks are forwarded to the underlying executor, unchanged. Local
// tasks execute inline: the first local submission on a goroutine
// establishes a batch, which Submit drains completely before returning,
// while local tasks submitted by a running task join the current batch,
// executing before the establishing Submit returns, without growing the
// stack.
//
// Queued work drains in established order first. Once the established work
// empties, tasks submitted during the batch run most recently submitted
// first.
//
// If a task panics, the batch stops. Whatever it had not yet executed is
// handed to the underlying executor as a single task, so the work proceeds
// elsewhere rather than being lost. The panic is then either rethrown, if
// classified fatal, or reported via the failure handler, after which Submit
// returns normally. See [WithFatalClassifier] and [WithFailureHandler].
//
// Tasks with a nil Runnable are ignored. Submit is safe for concurrent use.
func (x *Dispatcher) Submit(task Task) {
	if task.Runnable == nil {
		return
	}
	if !task.Local {
		x.metrics.forwarded.Add(1)
		x.executor.Execute(task)
		return
	}
	gid := goroutineID()
	if v, ok := x.batching.Load(gid); ok {
		b := v.(*batch)
		b.nested = append(b.nested, task)
		return
	}
	b := batchPool.Get().(*batch)
	b.established = append(b.established, task)
	x.runBatch(gid, b)
}

// Metrics returns a snapshot of the dispatcher's activity counters.
func (x *Dispatcher) Metrics() Metrics {
	return x.metrics.snapshot()
}

// runBatch establishes b as the current goroutine's batch and drains it. On
// abort, teardown of the registry entry and b happens in runTask instead.
func (x *Dispatcher) runBatch(gid uint64, b *batch) {
	x.batching.Store(gid, b)
	x.metrics.batches.Add(1)
	x.logger.Trace().
		Uint64(`goroutine`, gid).
		Log(`batch established`)
	for {
		task, ok := b.next()
		if !ok {
			break
		}
		if !x.runTask(gid, b, task) {
			return
		}
	}
	x.batching.Delete(gid)
	b.release()
}

// runTask executes task with panic protection, reporting whether the batch
// may continue.
func (x *Dispatcher) runTask(gid uint64, b *batch, task Task) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			x.abort(gid, b, r)
		}
	}()
	task.Run()
	x.metrics.executed.Add(1)
	return true
}

// abort tears down the batch after a task panic. The goroutine stops
// batching immediately, the unexecuted remainder is forked to the underlying
// executor, then the recovered value is rethrown, if fatal, or reported.
func (x *Dispatcher) abort(gid uint64, b *batch, r any) {
	x.batching.Delete(gid)

	err := PanicError{Value: r}
	if remainder := b.drain(); len(remainder) > 0 {
		x.fork(err, remainder)
	}
	b.release()

	if x.fatalClassifier(err) {
		panic(r)
	}
	x.metrics.failures.Add(1)
	x.failureHandler(err)
}

// fork hands the unexecuted remainder of an aborted batch to the underlying
// executor, as a single task that resumes the batch where it stopped.
func (x *Dispatcher) fork(cause error, remainder []Task) {
	x.metrics.forks.Add(1)
	x.logger.Debug().
		Err(cause).
		Int(`tasks`, len(remainder)).
		Log(`forked batch remainder`)
	x.executor.Execute(Task{Runnable: func() {
		x.resume(remainder)
	}})
}

// resume continues an aborted batch's remainder on whatever goroutine the
// executor provides. If that goroutine is already batching, the remainder
// folds into the live batch as its most recent submissions, preserving the
// remainder's own order.
func (x *Dispatcher) resume(remainder []Task) {
	gid := goroutineID()
	if v, ok := x.batching.Load(gid); ok {
		b := v.(*batch)
		for i := len(remainder) - 1; i >= 0; i-- {
			b.nested = append(b.nested, remainder[i])
		}
		return
	}
	b := batchPool.Get().(*batch)
	b.established = append(b.established, remainder...)
	x.runBatch(gid, b)
}

// logFailure is the default failure handler.
func (x *Dispatcher) logFailure(err error) {
	if x.logger != nil {
		x.logger.Err().Err(err).Log(`task failed`)
		return
	}
	log.Printf("ERROR: %v", err)
}

// next pops the next task to execute, preferring established work, and
// promoting the nested queue, most recently submitted first, once the
// established work empties.
func (b *batch) next() (Task, bool) {
	if b.head == len(b.established) {
		if len(b.nested) == 0 {
			return Task{}, false
		}
		slices.Reverse(b.nested)
		b.established, b.nested = b.nested, b.established[:0]
		b.head = 0
	}
	task := b.established[b.head]
	b.established[b.head] = Task{} // Clear the slot, the closure may be large
	b.head++
	return task, true
}

// drain removes and returns all queued work as a fresh slice, in the order
// it would have executed.
func (b *batch) drain() []Task {
	rest := b.established[b.head:]
	n := len(rest) + len(b.nested)
	if n == 0 {
		return nil
	}
	out := make([]Task, 0, n)
	out = append(out, rest...)
	for i := len(b.nested) - 1; i >= 0; i-- {
		out = append(out, b.nested[i])
	}
	return out
}

// release zeroes the batch and returns it to the pool.
func (b *batch) release() {
	clear(b.established)
	clear(b.nested)
	b.established = b.established[:0]
	b.head = 0
	b.nested = b.nested[:0]
	batchPool.Put(b)
}

func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] >= '0' && buf[i] <= '9' {
			id = id*10 + uint64(buf[i]-'0')
		} else {
			break
		}
	}
	return id
}
