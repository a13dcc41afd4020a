package memengine

import (
	"context"
	"math"
	"time"

	"github.com/libcirc/circulation-go/eventstore"
)

const (
	metricQueryDuration        = "journal_query_duration_seconds"
	metricAppendDuration       = "journal_append_duration_seconds"
	metricEventsQueried        = "journal_events_queried_total"
	metricEventsAppended       = "journal_events_appended_total"
	metricConcurrencyConflicts = "journal_concurrency_conflicts_total"
	metricCanceledOperations   = "journal_canceled_operations_total"

	logAttrOperation = "operation"
	labelStatus      = "status"

	statusSuccess  = "success"
	statusError    = "error"
	statusConflict = "conflict"
)

// logOperation logs at info level, preferring the contextual logger.
func (es EventStore) logOperation(ctx context.Context, action string, args ...any) {
	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	case es.logger != nil:
		es.logger.Info(logMsgOperation+action, args...)
	}
}

// logError logs at error level, preferring the contextual logger.
func (es EventStore) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.ErrorContext(ctx, message, allArgs...)
	case es.logger != nil:
		es.logger.Error(message, allArgs...)
	}
}

func buildLabels(operation, status string) map[string]string {
	return map[string]string{
		logAttrOperation: operation,
		labelStatus:      status,
	}
}

func (es EventStore) recordDuration(ctx context.Context, metric string, duration time.Duration, operation, status string) {
	if es.metricsCollector == nil {
		return
	}

	labels := buildLabels(operation, status)

	if contextualCollector, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
	} else {
		es.metricsCollector.RecordDuration(metric, duration, labels)
	}
}

func (es EventStore) recordValue(ctx context.Context, metric string, value float64, operation, status string) {
	if es.metricsCollector == nil {
		return
	}

	labels := buildLabels(operation, status)

	if contextualCollector, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
	} else {
		es.metricsCollector.RecordValue(metric, value, labels)
	}
}

func (es EventStore) recordCounter(ctx context.Context, metric string, operation, status string) {
	if es.metricsCollector == nil {
		return
	}

	labels := buildLabels(operation, status)

	if contextualCollector, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
	} else {
		es.metricsCollector.IncrementCounter(metric, labels)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
