package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"foodcourt/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	agentOfflineSweepJob *AgentOfflineSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepHandler commands.SweepStaleAgentsCommandHandler,
	agentOfflineAfter time.Duration,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		agentOfflineSweepJob: NewAgentOfflineSweepJob(
			sweepHandler, agentOfflineAfter, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.agentOfflineSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start agent offline sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.agentOfflineSweepJob.Stop()
}
