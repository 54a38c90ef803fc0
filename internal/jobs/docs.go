// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the transactional outbox flowing and tidy.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second (and on LISTEN/NOTIFY nudges) to
// move unpublished order events from the outbox to the broker
// 2. OutboxJanitorJob - Runs hourly to remove published events past the
// retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, publisher, listener, retentionDays, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The relay stops a batch at the first broker failure so events reach the
// broker in storage order; the unpublished tail is retried on the next run.
// Failed job starts stop any already running jobs.
package jobs
