package lending

import (
	"errors"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/circulation/shell"
)

// ErrNilClock is returned by WithClock(nil).
var ErrNilClock = errors.New("clock must not be nil")

// Option defines a functional option for configuring an Engine.
type Option func(*Engine) error

// WithClock sets where the engine takes "today" from. The default is the wall clock.
func WithClock(clock core.Clock) Option {
	return func(e *Engine) error {
		if clock == nil {
			return ErrNilClock
		}

		e.clock = clock

		return nil
	}
}

// WithPolicy replaces the default lending policy of 2 loans for 14 days.
func WithPolicy(policy core.Policy) Option {
	return func(e *Engine) error {
		if err := policy.Validate(); err != nil {
			return err
		}

		e.policy = policy

		return nil
	}
}

// WithJournal sets the journal the engine records its decisions in.
// Without it the engine creates an in-memory journal sharing the engine's observers.
func WithJournal(journal shell.Journal) Option {
	return func(e *Engine) error {
		e.journal = journal
		return nil
	}
}

// WithLogger sets the basic logger.
func WithLogger(logger shell.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger; it takes precedence over WithLogger.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(e *Engine) error {
		e.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the command handlers and the journal.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(e *Engine) error {
		e.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the command handlers.
func WithTracing(collector shell.TracingCollector) Option {
	return func(e *Engine) error {
		e.tracingCollector = collector
		return nil
	}
}
