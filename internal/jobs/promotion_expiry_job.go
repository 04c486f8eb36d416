package jobs

import (
	"context"
	"log/slog"

	"eats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPromotionExpirySchedule runs the sweep at the top of every hour.
const DefaultPromotionExpirySchedule = "@hourly"

// PromotionExpiryHandler is the use case the job runs.
type PromotionExpiryHandler interface {
	Handle(ctx context.Context, cmd commands.ExpirePromotionsCommand) (int, error)
}

// PromotionExpiryJob clears restaurant promotions whose paid period is over.
type PromotionExpiryJob struct {
	handler  PromotionExpiryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPromotionExpiryJob creates the job; an empty schedule falls back to
// DefaultPromotionExpirySchedule.
func NewPromotionExpiryJob(handler PromotionExpiryHandler, schedule string, logger *slog.Logger) *PromotionExpiryJob {
	if schedule == "" {
		schedule = DefaultPromotionExpirySchedule
	}
	return &PromotionExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "promotion_expiry_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *PromotionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Promotion expiry job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep.
func (j *PromotionExpiryJob) Run() {
	ctx := context.Background()
	expired, err := j.handler.Handle(ctx, commands.NewExpirePromotionsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Promotion expiry job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Promotions expired", "count", expired)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *PromotionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Promotion expiry job stopped")
}
