package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

const (
	defaultDays         = 90
	defaultStart        = "2024-01-08"
	defaultIssuesPerDay = 4
	defaultReturnRate   = 12.0
	defaultSeed         = 42
	startLayout         = "2006-01-02"
)

var (
	// ErrInvalidDays is returned when fewer than one day is requested.
	ErrInvalidDays = errors.New("days must be at least 1")

	// ErrInvalidIssuesPerDay is returned for a negative number of issue attempts.
	ErrInvalidIssuesPerDay = errors.New("issues per day must not be negative")

	// ErrInvalidReturnRate is returned when the return rate is not a percentage.
	ErrInvalidReturnRate = errors.New("return rate must be within [0, 100]")
)

// Settings holds the command line flags of one simulation run.
type Settings struct {
	ConfigPath   string
	FixturePath  string
	Days         int
	Start        time.Time
	IssuesPerDay int
	ReturnRate   float64 // percent chance per day that an open loan comes back
	Seed         uint64
}

// parseFlags parses args into Settings.
func parseFlags(args []string, output io.Writer) (Settings, error) {
	fs := flag.NewFlagSet("simulation", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		configPath   = fs.String("config", "", "YAML config file, CIRCULATION_* environment variables override it")
		fixturePath  = fs.String("fixture", "", "YAML fixture with books and patrons (default: built-in library)")
		days         = fs.Int("days", defaultDays, "Number of days to simulate")
		start        = fs.String("start", defaultStart, "First simulated day (YYYY-MM-DD)")
		issuesPerDay = fs.Int("issues-per-day", defaultIssuesPerDay, "Loan requests per simulated day")
		returnRate   = fs.Float64("return-rate", defaultReturnRate, "Percent chance per day that an open loan is returned")
		seed         = fs.Uint64("seed", defaultSeed, "Random seed")
	)

	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	startDay, err := time.Parse(startLayout, *start)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid start date '%s': %w", *start, err)
	}

	settings := Settings{
		ConfigPath:   *configPath,
		FixturePath:  *fixturePath,
		Days:         *days,
		Start:        startDay.Add(9 * time.Hour),
		IssuesPerDay: *issuesPerDay,
		ReturnRate:   *returnRate,
		Seed:         *seed,
	}

	return settings, settings.validate()
}

func (s Settings) validate() error {
	if s.Days < 1 {
		return ErrInvalidDays
	}

	if s.IssuesPerDay < 0 {
		return ErrInvalidIssuesPerDay
	}

	if s.ReturnRate < 0 || s.ReturnRate > 100 {
		return ErrInvalidReturnRate
	}

	return nil
}
