// Package jobs provides scheduled background tasks for the simulator.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order pipeline.
//
// # Available Jobs
//
// 1. KitchenProgressJob - Runs every second to mark preparing orders ready once their estimated ready time passes
// 2. RouteStatsJob - Runs every 30 seconds to report message router delivery counters
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the processor and router
//	jobManager := jobs.NewJobManager(processor, router, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Kitchen progress logs transition failures and keeps scanning
// - Route statistics skips routes with no traffic
// - Failed job starts will stop any already running jobs
package jobs
