// Package jobs provides scheduled background tasks for the workshop backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the shop floor relies on.
//
// # Available Jobs
//
// 1. WorkQueueReportJob - Runs every minute to log the in-progress work
// orders in the priority order mechanics should pick them up
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getWorkOrdersHandler, logger)
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
// Report failures are logged and the job keeps its schedule; a transient
// database error does not stop future runs. Failed job starts stop any
// already running jobs.
package jobs
