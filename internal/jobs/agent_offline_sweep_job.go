package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodcourt/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AgentOfflineSweepJob periodically marks delivery agents unavailable when
// their last heartbeat is older than the configured window. Without it a
// crashed agent app would keep showing up in the seller's assignment pool.
type AgentOfflineSweepJob struct {
	handler      commands.SweepStaleAgentsCommandHandler
	offlineAfter time.Duration
	schedule     string
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewAgentOfflineSweepJob creates the sweep job. The schedule is a
// six-field cron expression with a seconds column.
func NewAgentOfflineSweepJob(
	handler commands.SweepStaleAgentsCommandHandler,
	offlineAfter time.Duration,
	schedule string,
	logger *slog.Logger,
) *AgentOfflineSweepJob {
	return &AgentOfflineSweepJob{
		handler:      handler,
		offlineAfter: offlineAfter,
		schedule:     schedule,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "agent_offline_sweep_job"),
	}
}

// Start schedules the sweep and begins running it.
func (j *AgentOfflineSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewSweepStaleAgentsCommand(j.offlineAfter)
		if err != nil {
			j.logger.ErrorContext(ctx, "Agent offline sweep misconfigured", "error", err)
			return
		}

		swept, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Agent offline sweep failed", "error", err)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Marked silent agents unavailable", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Agent offline sweep started",
		"schedule", j.schedule, "offline_after", j.offlineAfter)
	return nil
}

// Stop stops the sweep job.
func (j *AgentOfflineSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Agent offline sweep stopped")
}
