package eventstore

import (
	"context"
	"time"
)

// The observer interfaces below keep the journal and the command handlers free of any
// telemetry dependency. oteladapters implements them with OpenTelemetry; tests use spies.

// Logger receives the journal's plain log lines. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger receives log lines together with the request context, so a bridge such
// as otelslog can attach the active trace. Where both loggers are configured, this one is used.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector records query and append timings, entry counts, conflicts and
// per-command outcomes. Labels are small, fixed key sets such as operation and status.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector is a MetricsCollector that also accepts the request context.
// The journal and the command handlers prefer these methods when a collector has them.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// TracingCollector opens one span per handled command and closes it with the outcome status.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// SpanContext is the open span of one command.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}
