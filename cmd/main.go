// joblist-api-service
//
// REST backend for the job catalog. Exposes jobs and companies over
// PostgreSQL with JWT route guards:
//   - GET    /api/v1/jobs, /api/v1/companies            — filtered listing
//   - GET    /api/v1/jobs/:title, /companies/:handle    — keyed lookup
//   - POST / PATCH / DELETE on both resources           — admin only
//
// Publishes EVENT_CATALOG_CHANGED to Redis on every mutation and a periodic
// EVENT_CATALOG_STATS snapshot via the cron scheduler.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"joblist/api-service/internal/auth"
	"joblist/api-service/internal/company"
	"joblist/api-service/internal/config"
	"joblist/api-service/internal/db"
	"joblist/api-service/internal/events"
	"joblist/api-service/internal/httpapi"
	"joblist/api-service/internal/job"
	"joblist/api-service/internal/scheduler"
)

const version = "1.0.0"

func main() {
	// Best-effort: a missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.Info("connecting to PostgreSQL")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("postgres connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	slog.Info("connecting to Redis")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("redis connect failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	pub := events.NewPublisher(rdb)
	jobs := job.NewService(pool, pub)
	companies := company.NewService(pool, pub)
	verifier := auth.NewVerifier(cfg.JWTSecret)

	sched := scheduler.New(pool, pub, cfg.StatsIntervalHours)
	if err := sched.Start(ctx); err != nil {
		slog.Error("scheduler start failed", "err", err)
		os.Exit(1)
	}
	defer sched.Stop()

	router := httpapi.NewRouter(jobs, companies, verifier)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("listening", "version", version, "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
	}
	slog.Info("stopped")
}
