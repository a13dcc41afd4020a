package spies

import (
	"context"
	"sync"

	"github.com/libcirc/circulation-go/eventstore"
)

// LogRecord is one recorded log call. Ctx is nil for the plain Logger methods.
type LogRecord struct {
	Level   string
	Message string
	Args    []any
	Ctx     context.Context
}

// Attr returns the value following key in Args.
func (r LogRecord) Attr(key string) (any, bool) {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if k, ok := r.Args[i].(string); ok && k == key {
			return r.Args[i+1], true
		}
	}

	return nil, false
}

// ContextualLoggerSpy implements both eventstore.Logger and eventstore.ContextualLogger.
type ContextualLoggerSpy struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewContextualLoggerSpy creates an empty ContextualLoggerSpy.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, LogRecord{Level: level, Message: msg, Args: args, Ctx: ctx})
}

func (s *ContextualLoggerSpy) Debug(msg string, args ...any) { s.record(nil, "debug", msg, args) }
func (s *ContextualLoggerSpy) Info(msg string, args ...any)  { s.record(nil, "info", msg, args) }
func (s *ContextualLoggerSpy) Warn(msg string, args ...any)  { s.record(nil, "warn", msg, args) }
func (s *ContextualLoggerSpy) Error(msg string, args ...any) { s.record(nil, "error", msg, args) }

func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

// Records returns a copy of all recorded calls in call order.
func (s *ContextualLoggerSpy) Records() []LogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]LogRecord(nil), s.records...)
}

// RecordsAt returns the recorded calls of one level.
func (s *ContextualLoggerSpy) RecordsAt(level string) []LogRecord {
	var found []LogRecord

	for _, r := range s.Records() {
		if r.Level == level {
			found = append(found, r)
		}
	}

	return found
}

// HasLog reports whether a call with that level and message was recorded.
func (s *ContextualLoggerSpy) HasLog(level, message string) bool {
	for _, r := range s.RecordsAt(level) {
		if r.Message == message {
			return true
		}
	}

	return false
}

var (
	_ eventstore.Logger           = (*ContextualLoggerSpy)(nil)
	_ eventstore.ContextualLogger = (*ContextualLoggerSpy)(nil)
)
