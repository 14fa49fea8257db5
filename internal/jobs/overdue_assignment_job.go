package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueAssignmentJob periodically looks for assignments that are still
// underway past their estimated delivery time and logs them. It is a
// watchdog, not an actor: it never changes assignment state.
type OverdueAssignmentJob struct {
	handler  queries.GetOverdueAssignmentsQueryHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueAssignmentJob creates the overdue watchdog. The cron spec uses
// the six-field (seconds-first) format.
func NewOverdueAssignmentJob(
	handler queries.GetOverdueAssignmentsQueryHandler,
	cronSpec string,
	logger *slog.Logger,
) *OverdueAssignmentJob {
	return &OverdueAssignmentJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_assignment_job"),
	}
}

// Start schedules the watchdog according to its cron spec.
func (j *OverdueAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()
		query := queries.NewGetOverdueAssignmentsQuery()

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue assignment check failed", "error", err)
			return
		}

		for _, a := range overdue {
			j.logger.WarnContext(ctx, "Assignment is overdue",
				"assignment_id", a.ID.String(),
				"order_id", a.OrderID.String(),
				"rider_id", a.RiderID.String(),
				"status", a.Status.String(),
				"estimated_delivery", a.EstimatedDelivery,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue assignment job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the watchdog.
func (j *OverdueAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue assignment job stopped")
}
