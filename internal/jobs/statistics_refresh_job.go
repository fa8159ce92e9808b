package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StatisticsRefreshJob periodically snapshots per-courier delivery
// statistics into the log. It reads from both backends and writes to
// neither.
type StatisticsRefreshJob struct {
	couriers ports.CourierClient
	handler  queries.GetCourierStatisticsQueryHandler
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatisticsRefreshJob creates the hourly statistics snapshot job.
func NewStatisticsRefreshJob(
	couriers ports.CourierClient,
	handler queries.GetCourierStatisticsQueryHandler,
	logger *slog.Logger,
) *StatisticsRefreshJob {
	return &StatisticsRefreshJob{
		couriers: couriers,
		handler:  handler,
		cron:     cron.New(),
		logger:   logger.With("component", "statistics_refresh_job"),
	}
}

// Start schedules the job to run hourly.
func (j *StatisticsRefreshJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		j.refresh(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics refresh job started (running hourly)")
	return nil
}

// Stop stops the statistics refresh job.
func (j *StatisticsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Statistics refresh job stopped")
}

// refresh snapshots every courier's totals. A failure for one courier does
// not stop the others.
func (j *StatisticsRefreshJob) refresh(ctx context.Context) {
	couriers, err := j.couriers.List(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Statistics refresh failed to load couriers", "error", err)
		return
	}

	for _, c := range couriers {
		query, err := queries.NewGetCourierStatisticsQuery(c.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Statistics refresh skipped courier",
				"courier_id", c.ID().Int64(), "error", err)
			continue
		}

		statistics, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Statistics refresh failed for courier",
				"courier_id", c.ID().Int64(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Courier statistics snapshot",
			"courier_id", statistics.CourierID.Int64(),
			"username", c.Username(),
			"total_routes", statistics.TotalRoutes,
			"completed_routes", statistics.CompletedRoutes,
			"total_distance_km", statistics.TotalDistanceKm,
			"total_orders_delivered", statistics.TotalOrdersDelivered,
		)
	}
}
