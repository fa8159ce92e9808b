package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statisticsRefreshJob *StatisticsRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	couriers ports.CourierClient,
	statisticsHandler queries.GetCourierStatisticsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statisticsRefreshJob: NewStatisticsRefreshJob(couriers, statisticsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statisticsRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start statistics refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statisticsRefreshJob.Stop()
}
