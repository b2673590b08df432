package dispatch

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Worker runs the dispatch workflow on a cron schedule when the service is
// started in watch mode.
type Worker struct {
	logger   *zap.Logger
	workflow *Workflow
	schedule string
	mu       sync.Mutex
	busy     bool
}

func NewWorker(logger *zap.Logger, workflow *Workflow, schedule string) *Worker {
	return &Worker{
		logger:   logger,
		workflow: workflow,
		schedule: schedule,
	}
}

func (w *Worker) Schedule() string {
	return w.schedule
}

func (w *Worker) Ready(time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.busy
}

func (w *Worker) Execute(ctx context.Context) {
	w.setBusy(true)
	defer w.setBusy(false)

	w.logger.Info("Starting scheduled dispatch run.")

	result, err := w.workflow.ProcessShipment(ctx, ExampleShipmentRequest())
	if err != nil {
		w.logger.Error("Scheduled dispatch run failed", zap.Error(err))
		return
	}

	w.logger.Info("Dispatch run completed 😴",
		zap.Int64("shipment_id", result.ShipmentID),
		zap.Int64("dispatch_order_id", result.DispatchOrderID),
	)
}

func (w *Worker) setBusy(busy bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = busy
}
