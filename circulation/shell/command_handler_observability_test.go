package shell_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/circulation/shell"
	"github.com/libcirc/circulation-go/eventstore"
	"github.com/libcirc/circulation-go/testutil/observability/spies"
)

func Test_ClassifyBusinessOutcome(t *testing.T) {
	testCases := []struct {
		name     string
		result   shell.HandlerResult
		err      error
		expected string
	}{
		{"no error", shell.NewSuccessResult(1), nil, shell.StatusSuccess},
		{"refused by the lending rules", shell.NewRejectedResult(0), core.ErrHasOverdueLoan, shell.StatusRejected},
		{"canceled context", shell.NewErrorResult(), errors.Join(eventstore.ErrContextDone, context.Canceled), shell.StatusCanceled},
		{"expired context", shell.NewErrorResult(), context.DeadlineExceeded, shell.StatusCanceled},
		{"concurrency conflict", shell.NewErrorResult(), eventstore.ErrConcurrencyConflict, shell.StatusConcurrencyConflict},
		{"anything else", shell.NewErrorResult(), errors.New("disk on fire"), shell.StatusError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, shell.ClassifyBusinessOutcome(tc.result, tc.err))
		})
	}
}

func Test_RecordCommandMetrics_Rejected_CountsCategory(t *testing.T) {
	// arrange
	metrics := spies.NewMetricsCollectorSpy()
	err := fmt.Errorf("%s: %w", core.IssuingLoanFailedEventType, core.ErrLoanLimitReached)

	// act
	shell.RecordCommandMetrics(context.Background(), metrics, "IssueLoan", shell.StatusRejected, time.Millisecond, err)

	// assert
	assert.True(t, metrics.HasRecord(shell.CommandHandlerCallsMetric, map[string]string{
		shell.LogAttrCommandType: "IssueLoan",
		shell.LogAttrStatus:      shell.StatusRejected,
	}))
	assert.True(t, metrics.HasRecord(shell.CommandHandlerRejectedMetric, map[string]string{
		shell.LogAttrErrorCategory: string(core.CategoryPolicy),
	}))
}

func Test_RecordCommandMetrics_Success_DoesNotCountRejection(t *testing.T) {
	// arrange
	metrics := spies.NewMetricsCollectorSpy()

	// act
	shell.RecordCommandMetrics(context.Background(), metrics, "ReturnLoan", shell.StatusSuccess, time.Millisecond, nil)

	// assert
	assert.Len(t, metrics.RecordsFor(shell.CommandHandlerDurationMetric), 1)
	assert.Empty(t, metrics.RecordsFor(shell.CommandHandlerRejectedMetric))
}

func Test_RecordCommandMetrics_NilCollector_IsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		shell.RecordCommandMetrics(context.Background(), nil, "IssueLoan", shell.StatusSuccess, time.Millisecond, nil)
	})
}

func Test_FinishCommandSpan_SetsLoanIDAndError(t *testing.T) {
	// arrange
	tracing := spies.NewTracingCollectorSpy()
	_, span := shell.StartCommandSpan(context.Background(), tracing, "ReturnLoan")

	// act
	shell.FinishCommandSpan(tracing, span, shell.StatusRejected, shell.NewRejectedResult(7), time.Millisecond, core.ErrAlreadyReturned)

	// assert
	spans := tracing.Spans()
	assert.Len(t, spans, 1)
	assert.Equal(t, shell.SpanNameCommandHandle, spans[0].Name)
	assert.True(t, spans[0].Finished)
	assert.Equal(t, shell.StatusRejected, spans[0].Status)
	assert.Equal(t, "7", spans[0].EndAttributes[shell.LogAttrLoanID])
	assert.Equal(t, core.ErrAlreadyReturned.Error(), spans[0].EndAttributes[shell.LogAttrError])
}

func Test_LogCommandRejected_PrefersContextualLogger(t *testing.T) {
	// arrange
	plain := spies.NewContextualLoggerSpy()
	contextual := spies.NewContextualLoggerSpy()

	// act
	shell.LogCommandRejected(context.Background(), plain, contextual, "IssueLoan", core.ErrNoCopiesAvailable)

	// assert
	assert.Empty(t, plain.Records())
	assert.True(t, contextual.HasLog("warn", shell.LogMsgCommandRejected))
	category, found := contextual.RecordsAt("warn")[0].Attr(shell.LogAttrErrorCategory)
	assert.True(t, found)
	assert.Equal(t, string(core.CategoryPolicy), category)
}
