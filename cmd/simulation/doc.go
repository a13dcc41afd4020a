// Package main runs a library circulation simulation against the lending engine.
//
// The simulation registers the books and patrons of a YAML fixture, then plays a number of
// simulated days. On every day patrons borrow random books and return some of their loans,
// a few of them late. The engine refuses what the lending policy forbids, and each refusal is
// counted by its error category. At the end of each day a circulation summary is logged as JSON.
//
// Days advance on a simulated clock, so a run over several months finishes in a moment.
//
// Settings come from an optional config file and CIRCULATION_* environment variables
// (loan limit, loan period, log level, observability). Flags select the fixture, the number
// of days, the start date, the activity per day and the random seed. With observability
// enabled, OpenTelemetry metrics and traces of every command are written to stderr.
package main
