// Package jobs provides scheduled background tasks for the supply chain service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the fulfillment flow.
//
// # Available Jobs
//
// 1. OutboxDispatcherJob - Runs every second to publish committed outbox messages to Kafka
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchOutboxHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatcher uses the cron expression "* * * * * *" which means it runs
// every second. Each tick publishes at most one batch of pending messages,
// oldest first, and marks them as delivered.
//
// # Error Handling
//
// Broker failures are logged and retried on the next tick. Messages are
// delivered at least once; consumers are expected to deduplicate by
// message key.
package jobs
