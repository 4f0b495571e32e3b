// Package jobs runs the periodic background work of the service on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob runs every second. It reads a batch of pending rows from the
// transactional outbox, publishes them to Kafka and marks them sent in the same
// transaction. A tick that is still running when the next one fires is skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, cfg.OutboxBatchSize, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatalf("Failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed publish is logged and the remaining messages stay pending until the
// next tick. Messages published before the failure are committed as sent.
package jobs
