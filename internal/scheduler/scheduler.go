// Package scheduler wires up the cron job that periodically publishes a
// catalog snapshot (row counts and average salary) for downstream consumers.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"joblist/api-service/internal/events"
)

// Snapshot is the aggregate published on each tick.
type Snapshot struct {
	Jobs      int     `json:"jobs"`
	Companies int     `json:"companies"`
	AvgSalary float64 `json:"avgSalary"`
}

// Scheduler wraps robfig/cron and manages the snapshot loop.
type Scheduler struct {
	cron *cron.Cron
	pool *pgxpool.Pool
	pub  *events.Publisher
	spec string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(pool *pgxpool.Pool, pub *events.Publisher, intervalHours int) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		pool: pool,
		pub:  pub,
		spec: fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one snapshot
// immediately so consumers see fresh numbers without waiting for the first
// tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runSnapshot(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	slog.Info("snapshot scheduler started", "spec", s.spec)

	go s.runSnapshot(ctx)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("snapshot scheduler stopped")
}

func (s *Scheduler) runSnapshot(ctx context.Context) {
	var snap Snapshot
	err := s.pool.QueryRow(ctx,
		`SELECT (SELECT count(*) FROM jobs),
		        (SELECT count(*) FROM companies),
		        (SELECT COALESCE(avg(salary), 0) FROM jobs)`,
	).Scan(&snap.Jobs, &snap.Companies, &snap.AvgSalary)
	if err != nil {
		slog.Warn("catalog snapshot query failed", "err", err)
		return
	}

	slog.Info("catalog snapshot",
		"jobs", snap.Jobs, "companies", snap.Companies, "avgSalary", snap.AvgSalary)
	s.pub.Stats(ctx, snap)
}
