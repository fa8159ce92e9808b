// Package jobs provides scheduled background tasks for the logistics service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that run alongside the HTTP API.
//
// # Available Jobs
//
// 1. StatisticsRefreshJob - Runs hourly to snapshot per-courier delivery
// statistics into the log for operational monitoring
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(courierClient, statisticsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The statistics job is read only. A failure for one courier is logged and
// the remaining couriers are still processed; the job never writes to either
// backend.
package jobs
