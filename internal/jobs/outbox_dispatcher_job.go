package jobs

import (
	"context"
	"log/slog"

	"supplytrace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxDispatcherJob manages the scheduled publishing of outbox messages.
// Runs every second so committed events reach the broker with low latency.
type OutboxDispatcherJob struct {
	handler commands.DispatchOutboxCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxDispatcherJob creates a new job for publishing outbox messages.
// Uses DispatchOutboxCommandHandler to run one publishing sweep per tick.
func NewOutboxDispatcherJob(handler commands.DispatchOutboxCommandHandler, logger *slog.Logger) *OutboxDispatcherJob {
	return &OutboxDispatcherJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "outbox_dispatcher_job"),
	}
}

// Start begins the outbox dispatcher job to run every second.
func (j *OutboxDispatcherJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchOutboxCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job started (running every second)")
	return nil
}

// Stop stops the outbox dispatcher job.
func (j *OutboxDispatcherJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job stopped")
}
