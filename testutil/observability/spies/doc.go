// Package spies provides test doubles for the observability interfaces of the journal and the
// command handlers:
//   - MetricsCollectorSpy: records metric calls, plain and context-aware
//   - TracingCollectorSpy: records started and finished spans
//   - ContextualLoggerSpy: records log calls by level, plain and context-aware
package spies
