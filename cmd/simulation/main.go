package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"

	"github.com/libcirc/circulation-go/circulation/lending"
	"github.com/libcirc/circulation-go/circulation/shell/config"
	"github.com/libcirc/circulation-go/eventstore/oteladapters"
)

const serviceVersion = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		stop()
		log.Fatalf("Simulation failed: %v", err)
	}
}

// run wires config, logging, observability and the engine, then plays the simulation.
// JSON logs go to stdout; OpenTelemetry exports, when enabled, go to stderr.
func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) (err error) {
	settings, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(settings.ConfigPath)
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	handler := slog.NewJSONHandler(stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("service", cfg.ServiceName)

	fixture, err := loadFixture(settings.FixturePath)
	if err != nil {
		return err
	}

	clock := newSimulatedClock(settings.Start)

	options := []lending.Option{
		lending.WithClock(clock),
		lending.WithPolicy(cfg.Policy()),
		lending.WithContextualLogger(oteladapters.NewSlogBridgeLoggerWithHandler(logger.Handler())),
	}

	if cfg.ObservabilityEnabled {
		providers, obsErr := config.NewObservabilityConfig(ctx, cfg.ServiceName, serviceVersion, stderr)
		if obsErr != nil {
			return obsErr
		}

		defer func() {
			err = errors.Join(err, providers.Shutdown())
		}()

		options = append(options,
			lending.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter(cfg.ServiceName))),
			lending.WithTracing(oteladapters.NewTracingCollector(otel.Tracer(cfg.ServiceName))),
		)
	}

	engine, err := lending.NewEngine(options...)
	if err != nil {
		return err
	}

	simulation := NewSimulation(engine, clock, logger, settings)

	if err := simulation.Seed(ctx, fixture); err != nil {
		return err
	}

	_, err = simulation.Run(ctx)

	return err
}
