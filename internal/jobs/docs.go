// Package jobs provides scheduled background tasks for the shipping platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the platform.
//
// # Available Jobs
//
// 1. ReservationExpiryJob - Runs every minute to release locker compartments
// whose reservations have passed their hold window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireReservationsHandler, logger)
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
// The expiry sweep logs failures and retries on the next tick; a failed run
// never blocks the scheduler.
package jobs
