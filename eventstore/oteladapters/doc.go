// Package oteladapters implements the observability interfaces of package eventstore on top of
// OpenTelemetry: metrics via the metric API, tracing via the trace API, and contextual logging
// via the otelslog bridge or the log API directly.
package oteladapters
