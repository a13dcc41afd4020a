package observable_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/circulation/shell"
	"github.com/libcirc/circulation-go/circulation/shell/observable"
	"github.com/libcirc/circulation-go/eventstore"
	"github.com/libcirc/circulation-go/testutil/observability/spies"
)

type testCommand struct {
	Payload string
}

func (testCommand) CommandType() string {
	return "TestCommand"
}

type handlerStub struct {
	result shell.HandlerResult
	err    error
	calls  []testCommand
}

func (h *handlerStub) Handle(_ context.Context, command testCommand) (shell.HandlerResult, error) {
	h.calls = append(h.calls, command)

	return h.result, h.err
}

type observers struct {
	metrics *spies.MetricsCollectorSpy
	tracing *spies.TracingCollectorSpy
	logger  *spies.ContextualLoggerSpy
}

func givenWrapper(t *testing.T, handler *handlerStub) (*observable.CommandWrapper[testCommand], observers) {
	t.Helper()

	o := observers{
		metrics: spies.NewMetricsCollectorSpy(),
		tracing: spies.NewTracingCollectorSpy(),
		logger:  spies.NewContextualLoggerSpy(),
	}

	wrapper, err := observable.NewCommandWrapper[testCommand](
		handler,
		observable.WithCommandMetrics[testCommand](o.metrics),
		observable.WithCommandTracing[testCommand](o.tracing),
		observable.WithCommandContextualLogging[testCommand](o.logger),
	)
	require.NoError(t, err)

	return wrapper, o
}

func assertCallRecorded(t *testing.T, o observers, status string) {
	t.Helper()

	assert.True(t, o.metrics.HasRecord(shell.CommandHandlerCallsMetric, map[string]string{
		shell.LogAttrCommandType: "TestCommand",
		shell.LogAttrStatus:      status,
	}), "calls metric with status %s", status)
	assert.True(t, o.metrics.HasRecord(shell.CommandHandlerDurationMetric, map[string]string{
		shell.LogAttrStatus: status,
	}), "duration metric with status %s", status)

	spans := o.tracing.Spans()
	require.Len(t, spans, 1)
	assert.True(t, spans[0].Finished)
	assert.Equal(t, status, spans[0].Status)
}

func Test_CommandWrapper_Handle_Success(t *testing.T) {
	// arrange
	handler := &handlerStub{result: shell.NewSuccessResult(4)}
	wrapper, o := givenWrapper(t, handler)
	command := testCommand{Payload: "x"}

	// act
	result, err := wrapper.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, shell.NewSuccessResult(4), result)
	assert.Equal(t, []testCommand{command}, handler.calls)
	assertCallRecorded(t, o, shell.StatusSuccess)
	assert.True(t, o.logger.HasLog("debug", shell.LogMsgCommandStarted))
	assert.True(t, o.logger.HasLog("info", shell.LogMsgCommandCompleted))
	assert.Empty(t, o.metrics.RecordsFor(shell.CommandHandlerRejectedMetric))
}

func Test_CommandWrapper_Handle_Rejected(t *testing.T) {
	// arrange
	refusal := fmt.Errorf("%s: %w", core.IssuingLoanFailedEventType, core.ErrHasOverdueLoan)
	handler := &handlerStub{result: shell.NewRejectedResult(0), err: refusal}
	wrapper, o := givenWrapper(t, handler)

	// act
	result, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.ErrorIs(t, err, core.ErrHasOverdueLoan)
	assert.True(t, result.Rejected)
	assertCallRecorded(t, o, shell.StatusRejected)
	assert.True(t, o.metrics.HasRecord(shell.CommandHandlerRejectedMetric, map[string]string{
		shell.LogAttrErrorCategory: string(core.CategoryPolicy),
	}))
	assert.True(t, o.logger.HasLog("warn", shell.LogMsgCommandRejected))
	assert.False(t, o.logger.HasLog("error", shell.LogMsgCommandFailed))
}

func Test_CommandWrapper_Handle_InfrastructureErrors(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status string
	}{
		{"canceled", errors.Join(eventstore.ErrContextDone, context.Canceled), shell.StatusCanceled},
		{"conflict", eventstore.ErrConcurrencyConflict, shell.StatusConcurrencyConflict},
		{"other", errors.New("payload could not be marshaled"), shell.StatusError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			wrapper, o := givenWrapper(t, &handlerStub{result: shell.NewErrorResult(), err: tc.err})

			// act
			_, err := wrapper.Handle(context.Background(), testCommand{})

			// assert
			assert.ErrorIs(t, err, tc.err)
			assertCallRecorded(t, o, tc.status)
			assert.True(t, o.logger.HasLog("error", shell.LogMsgCommandFailed))
		})
	}
}

func Test_CommandWrapper_Handle_WithoutObservers(t *testing.T) {
	// arrange
	wrapper, err := observable.NewCommandWrapper[testCommand](&handlerStub{result: shell.NewSuccessResult(1)})
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.LoanIDUint(1), result.LoanID)
}

func Test_CommandWrapper_PlainLogger_IsUsedWithoutContextualLogger(t *testing.T) {
	// arrange
	logger := spies.NewContextualLoggerSpy()
	wrapper, err := observable.NewCommandWrapper[testCommand](
		&handlerStub{result: shell.NewSuccessResult(1)},
		observable.WithCommandLogging[testCommand](logger),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), testCommand{})

	// assert
	require.NoError(t, err)
	records := logger.RecordsAt("info")
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Ctx)
}
