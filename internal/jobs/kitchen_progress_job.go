package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ogradyo/restaurant-simulator/internal/core/application/processing"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"
)

// KitchenProgressJob advances the kitchen. Runs every second and marks
// preparing orders ready once their estimated ready time has passed.
type KitchenProgressJob struct {
	processor *processing.Processor
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewKitchenProgressJob(processor *processing.Processor, logger *slog.Logger) *KitchenProgressJob {
	return &KitchenProgressJob{
		processor: processor,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "kitchen_progress_job"),
	}
}

// Start begins the kitchen progress job to run every second.
func (j *KitchenProgressJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", j.tick)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen progress job started (running every second)")
	return nil
}

func (j *KitchenProgressJob) tick() {
	now := time.Now()
	for _, o := range j.processor.OrdersByStatus(order.Preparing) {
		ready, ok := o.EstimatedReadyTime()
		if !ok || now.Before(ready) {
			continue
		}
		if err := j.processor.CompleteOrder(o.ID()); err != nil {
			j.logger.Error("Failed to mark order ready", "order_id", o.ID().String(), "error", err)
			continue
		}
		j.logger.Info("Order ready for pickup", "order_id", o.ID().String())
	}
}

// Stop stops the kitchen progress job.
func (j *KitchenProgressJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen progress job stopped")
}
