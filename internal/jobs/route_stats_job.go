package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/ogradyo/restaurant-simulator/internal/core/application/messaging"
)

// RouteStatsJob periodically reports router delivery counters. Runs every
// thirty seconds and skips the report while nothing has been delivered.
type RouteStatsJob struct {
	router *messaging.Router
	cron   *cron.Cron
	logger *slog.Logger
}

func NewRouteStatsJob(router *messaging.Router, logger *slog.Logger) *RouteStatsJob {
	return &RouteStatsJob{
		router: router,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "route_stats_job"),
	}
}

// Start begins the route statistics job.
func (j *RouteStatsJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route statistics job started (running every 30 seconds)")
	return nil
}

func (j *RouteStatsJob) report() {
	for name, stats := range j.router.Statistics() {
		if stats.Delivered == 0 && stats.Errors == 0 {
			continue
		}
		j.logger.Info("Route statistics",
			"route", name,
			"destination", stats.Destination,
			"delivered", stats.Delivered,
			"errors", stats.Errors,
			"success_rate", stats.SuccessRate,
		)
	}
}

// Stop stops the route statistics job.
func (j *RouteStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Route statistics job stopped")
}
