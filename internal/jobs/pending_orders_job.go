package jobs

import (
	"context"
	"log/slog"

	"orderintake/internal/core/application/usecases/queries"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/observability"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob publishes the pending-order backlog as a metric.
// Runs every minute so dashboards and alerts see a stale value for at most
// one scheduling interval.
type PendingOrdersJob struct {
	handler queries.CountOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates the backlog gauge job.
func NewPendingOrdersJob(handler queries.CountOrdersQueryHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start schedules the job to run once per minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewCountOrdersQuery(order.Pending)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Pending orders job misconfigured", "error", queryErr)
			return
		}

		count, countErr := j.handler.Handle(ctx, query)
		if countErr != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed", "error", countErr)
			return
		}

		observability.SetPendingOrders(count)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}
