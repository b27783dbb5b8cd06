package trampoline

import (
	"github.com/joeycumines/logiface"
)

// dispatcherOptions holds configuration options for Dispatcher creation.
type dispatcherOptions struct {
	logger          *logiface.Logger[logiface.Event]
	failureHandler  func(error)
	fatalClassifier func(error) bool
}

// Option configures a Dispatcher instance.
type Option interface {
	apply(*dispatcherOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyFunc func(*dispatcherOptions) error
}

func (o *optionImpl) apply(opts *dispatcherOptions) error {
	return o.applyFunc(opts)
}

// WithLogger sets the logger used by the dispatcher. The logger receives a
// debug entry whenever a batch remainder is forked to the underlying
// executor, and, unless a failure handler is configured, an error entry for
// every recoverable task failure.
//
// Without a logger, failures are reported via the standard library's
// [log.Printf], and nothing else is logged.
func WithLogger[E logiface.Event](logger *logiface.Logger[E]) Option {
	return &optionImpl{func(opts *dispatcherOptions) error {
		opts.logger = logger.Logger()
		return nil
	}}
}

// WithFailureHandler sets the handler invoked with each recoverable task
// failure, always a [PanicError] wrapping the recovered value. It replaces
// the default behavior of logging the failure. A nil handler restores the
// default.
//
// The handler runs on the goroutine that executed the failed task, before
// the establishing [Dispatcher.Submit] returns. It must not panic.
func WithFailureHandler(handler func(err error)) Option {
	return &optionImpl{func(opts *dispatcherOptions) error {
		opts.failureHandler = handler
		return nil
	}}
}

// WithFatalClassifier sets the predicate deciding whether a recovered task
// panic is rethrown (fatal) or reported and survived (recoverable). The
// classifier receives a [PanicError] wrapping the recovered value.
//
// The default, restored by a nil classifier, treats [runtime.Error] panics
// as fatal.
func WithFatalClassifier(classifier func(err error) bool) Option {
	return &optionImpl{func(opts *dispatcherOptions) error {
		opts.fatalClassifier = classifier
		return nil
	}}
}

// resolveOptions applies Option instances to dispatcherOptions.
func resolveOptions(opts []Option) (*dispatcherOptions, error) {
	cfg := &dispatcherOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
