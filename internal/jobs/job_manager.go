package jobs

import (
	"fmt"
	"log/slog"

	"github.com/ogradyo/restaurant-simulator/internal/core/application/messaging"
	"github.com/ogradyo/restaurant-simulator/internal/core/application/processing"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kitchenProgressJob *KitchenProgressJob
	routeStatsJob      *RouteStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	processor *processing.Processor,
	router *messaging.Router,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenProgressJob: NewKitchenProgressJob(processor, logger),
		routeStatsJob:      NewRouteStatsJob(router, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenProgressJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen progress job: %w", err)
	}

	if err := jm.routeStatsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.kitchenProgressJob.Stop()
		return fmt.Errorf("failed to start route statistics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.routeStatsJob.Stop()
	jm.kitchenProgressJob.Stop()
}
