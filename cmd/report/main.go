// Package main - entry point of the engineer roster report.
//
// The report builds the fixed sample roster and prints, in order:
// - the full roster with per-engineer success rates
// - engineers with more than five years grouped by expertise
// - the most experienced engineer of every type
// - the total of projects and certificates
//
// Report text goes to stdout, structured logs to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alem-hub/engineer-roster/config"
	"github.com/alem-hub/engineer-roster/internal/application/query"
	"github.com/alem-hub/engineer-roster/internal/domain/shared"
	"github.com/alem-hub/engineer-roster/internal/infrastructure/seed"
	"github.com/alem-hub/engineer-roster/internal/interface/console"
	"github.com/alem-hub/engineer-roster/pkg/logger"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg, stderr)
	ctx = logger.WithContext(ctx, log)
	log.Debug("starting engineer roster report",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ROSTER
	// ─────────────────────────────────────────────────────────────────────────
	r, err := seed.SampleRoster(log)
	if err != nil {
		if ve, ok := shared.AsValidation(err); ok {
			log.Error("invalid engineer record", logger.InvalidField(ve.Field), logger.Err(err))
		}
		return fmt.Errorf("failed to build roster: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. REPORT
	// ─────────────────────────────────────────────────────────────────────────
	return report(ctx, query.RosterReportQuery{Roster: r}, stdout)
}

// report runs the roster query and prints the result.
func report(ctx context.Context, q query.RosterReportQuery, stdout io.Writer) error {
	log := logger.FromContext(ctx)

	result, err := query.NewRosterReportHandler(log).Handle(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	if err := console.NewPrinter(stdout, log.WithReportID(result.ReportID)).PrintReport(result); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	return nil
}

func setupLogger(cfg *config.Config, out io.Writer) *logger.Logger {
	return logger.New(logger.Options{
		Output:    out,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: cfg.Observability.LogCaller,
	}).With(
		logger.String("app", cfg.App.Name),
	)
}
