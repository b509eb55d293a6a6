// Package jobs provides scheduled background tasks for the fleet dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. OrderDispatchJob - Runs every second to match the oldest pending order
// with an idle vehicle and a free driver from the vehicle's fleet.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchPendingHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second, so a pending order is picked up quickly once a vehicle frees up.
//
// # Error Handling
//
// Rounds with nothing to dispatch (no pending order, no suitable vehicle, no
// free driver) are expected outcomes and are not logged. Any other error is
// logged as a system issue.
package jobs
