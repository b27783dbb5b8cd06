package trampoline

// Task is a unit of work accepted by a [Dispatcher].
type Task struct {
	// Runnable is the function to execute. Tasks with a nil Runnable are
	// ignored.
	Runnable func()

	// Local marks the task as safe to execute inline, on the submitting
	// goroutine, batched together with any further local tasks it submits.
	// Non-local tasks are always handed to the underlying [Executor].
	//
	// Local tasks must be cheap and must not block, as they hold up every
	// other task batched on the same goroutine.
	Local bool
}

// Run executes the task, if it has a Runnable.
func (x Task) Run() {
	if x.Runnable != nil {
		x.Runnable()
	}
}

// An Executor runs tasks, typically asynchronously. It is the underlying
// scheduler that a [Dispatcher] wraps, receiving every non-local task, and
// the unexecuted remainder of any batch that failed partway through.
type Executor interface {
	// Execute runs or schedules task. Implementations decide where and
	// when the task actually runs.
	Execute(task Task)
}

// ExecutorFunc implements [Executor].
type ExecutorFunc func(task Task)

// Execute calls x(task).
func (x ExecutorFunc) Execute(task Task) { x(task) }
