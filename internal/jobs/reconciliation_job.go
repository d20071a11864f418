package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reconciliationSchedule runs the sweep at the top of every minute.
const reconciliationSchedule = "0 * * * * *"

// ReconciliationJob periodically reverts courier assignments that exceed
// the courier's capacity. The underlying command is idempotent, so an
// overlapping or repeated run changes nothing.
type ReconciliationJob struct {
	handler commands.ReconcileCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReconciliationJob creates the capacity reconciliation sweep job.
func NewReconciliationJob(
	handler commands.ReconcileCouriersCommandHandler,
	logger *slog.Logger,
) *ReconciliationJob {
	return &ReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reconciliation_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(reconciliationSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileCouriersCommand()

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Reconciliation job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *ReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}
