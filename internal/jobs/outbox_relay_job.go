package jobs

import (
	"context"
	"log/slog"

	"cookieadmin/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxRelayer publishes a batch of pending outbox messages.
// commands.RelayOutboxCommandHandler satisfies it.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob ships order change events to the broker every second.
type OutboxRelayJob struct {
	relayer   OutboxRelayer
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(relayer OutboxRelayer, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		relayer:   relayer,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start validates the batch size and schedules the relay.
func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc("* * * * * *", func() {
		j.tick(context.Background(), cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)",
		"batch_size", j.batchSize)
	return nil
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) tick(ctx context.Context, cmd commands.RelayOutboxCommand) {
	sent, err := j.relayer.Handle(ctx, cmd)
	if sent > 0 {
		j.logger.DebugContext(ctx, "Outbox messages relayed", "count", sent)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err, "relayed", sent)
	}
}
