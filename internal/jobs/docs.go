// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path cannot cover.
//
// # Available Jobs
//
// 1. AgentOfflineSweepJob - Periodically marks delivery agents unavailable
// when their last heartbeat is older than the configured window, keeping
// the seller's assignment pool free of dead devices.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, offlineAfter, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses a six-field cron expression with a seconds column, e.g.
// "0 * * * * *" to run at the top of every minute. The sweep only flips
// agents that are currently marked available, so repeated runs are cheap
// and idempotent.
package jobs
