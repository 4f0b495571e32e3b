package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the service and starts and stops
// them together.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

// NewJobManager creates the job manager with every job wired to its handler.
// Nothing runs until StartAll.
//
// Example:
//
//	jobManager := jobs.NewJobManager(relayHandler, 100, logger)
//	if err := jobManager.StartAll(); err != nil {
//	    log.Fatalf("Failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
func NewJobManager(relayer OutboxRelayer, outboxBatchSize int, logger *slog.Logger) *JobManager {
	return &JobManager{
		outboxRelayJob: NewOutboxRelayJob(relayer, outboxBatchSize, logger),
	}
}

// StartAll starts every job. It fails when a job rejects its configuration,
// for example a batch size outside 1..commands.MaxRelayBatchSize.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}
	return nil
}

// StopAll stops every job and waits for running ticks to finish.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
