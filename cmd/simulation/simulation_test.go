package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/circulation/lending"
)

func givenSimulation(t *testing.T, settings Settings) (*Simulation, *bytes.Buffer) {
	t.Helper()

	clock := newSimulatedClock(settings.Start)
	engine, err := lending.NewEngine(lending.WithClock(clock))
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewSimulation(engine, clock, logger, settings), &logs
}

func givenSettings(t *testing.T, args ...string) Settings {
	t.Helper()

	settings, err := parseFlags(args, &bytes.Buffer{})
	require.NoError(t, err)

	return settings
}

func givenEmbeddedFixture(t *testing.T) Fixture {
	t.Helper()

	fixture, err := loadFixture("")
	require.NoError(t, err)

	return fixture
}

func Test_ParseFlags_Defaults(t *testing.T) {
	// act
	settings := givenSettings(t)

	// assert
	assert.Equal(t, defaultDays, settings.Days)
	assert.Equal(t, defaultIssuesPerDay, settings.IssuesPerDay)
	assert.Equal(t, time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), settings.Start)
	assert.Equal(t, uint64(defaultSeed), settings.Seed)
	assert.Empty(t, settings.FixturePath)
}

func Test_ParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{name: "zero days", args: []string{"-days", "0"}, expectedErr: ErrInvalidDays},
		{name: "negative issues", args: []string{"-issues-per-day", "-1"}, expectedErr: ErrInvalidIssuesPerDay},
		{name: "return rate above 100", args: []string{"-return-rate", "101"}, expectedErr: ErrInvalidReturnRate},
		{name: "negative return rate", args: []string{"-return-rate", "-0.5"}, expectedErr: ErrInvalidReturnRate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseFlags(tc.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}

	_, err := parseFlags([]string{"-start", "08.01.2024"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid start date")
}

func Test_LoadFixture_Embedded(t *testing.T) {
	// act
	fixture := givenEmbeddedFixture(t)

	// assert
	assert.Len(t, fixture.Books, 6)
	assert.Len(t, fixture.Patrons, 5)
	assert.Equal(t, "0-306-40615-2", fixture.Books[0].ISBN)
	assert.Equal(t, 2, fixture.Books[0].Copies)
	assert.Equal(t, "Ana Lima", fixture.Patrons[0].FullName)
}

func Test_LoadFixture_FromFile(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	content := "books:\n  - isbn: \"0306406152\"\n    copies: 1\npatrons:\n  - id: \"7\"\n    email: \"x@y.org\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// act
	fixture, err := loadFixture(path)
	_, missingErr := loadFixture(filepath.Join(t.TempDir(), "missing.yaml"))

	// assert
	require.NoError(t, err)
	assert.Len(t, fixture.Books, 1)
	assert.Len(t, fixture.Patrons, 1)
	assert.ErrorIs(t, missingErr, ErrReadingFixtureFailed)
}

func Test_Simulation_Seed_SkipsRejectedEntries(t *testing.T) {
	// arrange
	simulation, logs := givenSimulation(t, givenSettings(t))
	fixture := Fixture{
		Books: []BookFixture{
			{ISBN: "0306406152", Title: "Valid", Copies: 1},
			{ISBN: "12345", Title: "Invalid", Copies: 1},
			{ISBN: "030-640-6152", Title: "Duplicate", Copies: 1},
		},
		Patrons: []PatronFixture{
			{ID: "1", FullName: "Valid", Email: "valid@example.org"},
			{ID: "2", FullName: "Broken", Email: "broken"},
		},
	}

	// act
	err := simulation.Seed(context.Background(), fixture)

	// assert
	require.NoError(t, err)
	assert.Len(t, simulation.engine.Books(), 1)
	assert.Len(t, simulation.engine.Patrons(), 1)
	assert.Equal(t, 3, strings.Count(logs.String(), logMsgSeedRejected))
}

func Test_Simulation_Run_KeepsInvariantsEveryDay(t *testing.T) {
	// arrange
	settings := givenSettings(t, "-days", "60", "-issues-per-day", "6", "-return-rate", "10")
	simulation, logs := givenSimulation(t, settings)
	require.NoError(t, simulation.Seed(context.Background(), givenEmbeddedFixture(t)))

	// act
	report, err := simulation.Run(context.Background())

	// assert
	require.NoError(t, err)
	require.Len(t, report.Days, 60)
	assert.Positive(t, report.Issued)
	assert.Positive(t, report.Refusals[core.CategoryPolicy])
	assert.Zero(t, report.Refusals[core.CategoryNotFound])

	for _, day := range report.Days {
		assert.Equal(t, 6, day.Books)
		assert.Equal(t, 11, day.TotalCopies)
		assert.LessOrEqual(t, day.AvailableCopies, day.TotalCopies)
		assert.Equal(t, day.TotalCopies-day.ActiveLoans, day.AvailableCopies)
		assert.LessOrEqual(t, day.ActiveLoans, 5*core.DefaultLoanLimit)
		assert.LessOrEqual(t, day.OverdueLoans, day.ActiveLoans)
	}

	last := report.Days[len(report.Days)-1]
	assert.Equal(t, report.Issued, last.Loans)
	assert.Equal(t, report.Issued-report.Returned, last.ActiveLoans)
	assert.Equal(t, 60, strings.Count(logs.String(), logMsgDailySummary))
	assert.Equal(t, 5, strings.Count(logs.String(), logMsgPatronHistory))
}

func Test_Simulation_Run_IsDeterministicPerSeed(t *testing.T) {
	// arrange
	settings := givenSettings(t, "-days", "30", "-seed", "7")
	first, _ := givenSimulation(t, settings)
	second, _ := givenSimulation(t, settings)
	require.NoError(t, first.Seed(context.Background(), givenEmbeddedFixture(t)))
	require.NoError(t, second.Seed(context.Background(), givenEmbeddedFixture(t)))

	// act
	firstReport, firstErr := first.Run(context.Background())
	secondReport, secondErr := second.Run(context.Background())

	// assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.Equal(t, firstReport, secondReport)
}

func Test_Simulation_Run_StopsOnCanceledContext(t *testing.T) {
	// arrange
	simulation, _ := givenSimulation(t, givenSettings(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	report, err := simulation.Run(ctx)

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Days)
}

func Test_Run_WritesJSONSummaries(t *testing.T) {
	// arrange
	var stdout, stderr bytes.Buffer

	// act
	err := run(context.Background(), []string{"-days", "3"}, &stdout, &stderr)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(stdout.String(), `"msg":"`+logMsgDailySummary+`"`))
	assert.Contains(t, stdout.String(), `"service":"circulation"`)
}
