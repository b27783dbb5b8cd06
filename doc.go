// Package trampoline executes chains of small tasks iteratively, batching
// them on the submitting goroutine, instead of growing the call stack or
// paying a scheduler round trip per task.
//
// A [Dispatcher] wraps an underlying [Executor]. Tasks submitted with
// [Task.Local] set run inline: the first local submission on a goroutine
// establishes a batch, and any local tasks submitted while the batch runs
// are queued and drained iteratively, so a task chain of arbitrary length
// executes in constant stack space. Everything else is forwarded to the
// executor untouched.
//
// The typical use is completing futures, draining callback chains, and
// other recursive hand-offs where each step is cheap, non-blocking, and
// likely to trigger the next.
//
// # Failure isolation
//
// A panicking task stops its batch, but not the queued work: the unexecuted
// remainder is handed to the underlying executor before the panic is
// reported (or rethrown, for fatal panics), so one broken task cannot
// silently discard the rest of the batch. See [Dispatcher.Submit] for
// details.
package trampoline
