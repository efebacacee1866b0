package jobs

import (
	"context"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// WorkQueueReportJob periodically logs the shop's work queue: every order
// still moving through the lifecycle, in the priority order the mechanics
// should pick them up.
type WorkQueueReportJob struct {
	handler queries.GetWorkOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorkQueueReportJob creates the work-queue report job.
// Uses GetWorkOrdersQueryHandler to snapshot the queue once a minute.
func NewWorkQueueReportJob(handler queries.GetWorkOrdersQueryHandler, logger *slog.Logger) *WorkQueueReportJob {
	return &WorkQueueReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "work_queue_report_job"),
	}
}

// Start begins the report job to run every minute.
func (j *WorkQueueReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetWorkOrdersQuery(nil, nil, nil)
		if err != nil {
			j.logger.ErrorContext(ctx, "Work queue report failed", "error", err)
			return
		}

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Work queue report failed", "error", err)
			return
		}

		inProgress := 0
		for _, order := range orders {
			if !order.Status.IsInProgress() {
				continue
			}
			inProgress++
			j.logger.InfoContext(ctx, "Work queue entry",
				"position", inProgress,
				"orderId", order.ID.String(),
				"status", order.Status.String(),
				"total", order.Total.String(),
			)
		}

		j.logger.InfoContext(ctx, "Work queue report", "inProgress", inProgress)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Work queue report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *WorkQueueReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Work queue report job stopped")
}
