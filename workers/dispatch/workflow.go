package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"shipx-dispatch-service/config"
	"shipx-dispatch-service/workers/dispatch/models"
	"shipx-dispatch-service/workers/dispatch/repositories"
	"shipx-dispatch-service/workers/dispatch/shipx"
)

// ShipmentAPI is the slice of the provider client the workflow needs.
type ShipmentAPI interface {
	CreateShipment(ctx context.Context, shipment *shipx.ShipmentRequest) (*shipx.Shipment, error)
	GetShipment(ctx context.Context, shipmentID int64) (*shipx.Shipment, error)
	GetLabel(ctx context.Context, shipmentID int64) ([]byte, error)
	CreateDispatchOrder(ctx context.Context, order *shipx.DispatchOrderRequest) (*shipx.DispatchOrder, error)
	GetPrintout(ctx context.Context, dispatchOrderID int64) ([]byte, error)
}

type WorkflowResult struct {
	ShipmentID      int64
	DispatchOrderID int64
	TrackingNumber  string
	LabelPath       string
	PrintoutPath    string
}

type Workflow struct {
	logger    *zap.Logger
	api       ShipmentAPI
	runs      *repositories.Repository
	outputDir string
	poll      *config.PollConfig
}

// NewWorkflow wires the five-step dispatch sequence. The run repository is
// optional; pass nil to skip run history.
func NewWorkflow(logger *zap.Logger, api ShipmentAPI, runs *repositories.Repository, outputDir string, poll *config.PollConfig) *Workflow {
	return &Workflow{
		logger:    logger,
		api:       api,
		runs:      runs,
		outputDir: outputDir,
		poll:      poll,
	}
}

// ProcessShipment runs the whole sequence: create the shipment, wait until the
// provider confirms it, store the label, order a courier pickup for tomorrow
// and store the pickup printout. The first failing step ends the run.
func (w *Workflow) ProcessShipment(ctx context.Context, request *shipx.ShipmentRequest) (*WorkflowResult, error) {
	run := &models.WorkflowRun{Status: models.RunStatusFailed, StartedAt: time.Now().UTC()}
	defer w.recordRun(run)

	result, err := w.processShipment(ctx, request, run)
	if err != nil {
		run.Error = err.Error()
		return nil, err
	}

	run.Status = models.RunStatusCompleted
	return result, nil
}

func (w *Workflow) processShipment(ctx context.Context, request *shipx.ShipmentRequest, run *models.WorkflowRun) (*WorkflowResult, error) {
	w.logger.Info("Creating shipment", zap.String("reference", request.Reference))

	created, err := w.api.CreateShipment(ctx, request)
	if err != nil {
		w.logStepFailure("Failed to create shipment", request, err)
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	run.ShipmentID = created.ID
	w.logger.Info("Shipment created",
		zap.Int64("shipment_id", created.ID),
		zap.String("status", created.Status),
		zap.Int64("dispatch_point_id", created.Sender.ID),
	)

	confirmed, err := w.waitForConfirmation(ctx, created.ID)
	if err != nil {
		w.logStepFailure("Shipment was not confirmed", nil, err)
		return nil, fmt.Errorf("wait for confirmation: %w", err)
	}
	run.TrackingNumber = confirmed.TrackingNumber

	labelPath, err := w.saveArtifact(fmt.Sprintf("%d_label.pdf", confirmed.ID), func() ([]byte, error) {
		return w.api.GetLabel(ctx, confirmed.ID)
	})
	if err != nil {
		w.logStepFailure("Failed to generate label", nil, err)
		return nil, fmt.Errorf("generate label: %w", err)
	}
	run.LabelPath = labelPath
	w.logger.Info("Label saved", zap.String("path", labelPath))

	orderRequest := buildDispatchOrder(request, confirmed, created.Sender.ID)
	order, err := w.api.CreateDispatchOrder(ctx, orderRequest)
	if err != nil {
		w.logStepFailure("Failed to create dispatch order", orderRequest, err)
		return nil, fmt.Errorf("create dispatch order: %w", err)
	}
	run.DispatchOrderID = order.ID
	w.logger.Info("Dispatch order created",
		zap.Int64("dispatch_order_id", order.ID),
		zap.String("dispatch_date", orderRequest.DispatchDate),
	)

	printoutPath, err := w.saveArtifact(fmt.Sprintf("%d_printout.pdf", order.ID), func() ([]byte, error) {
		return w.api.GetPrintout(ctx, order.ID)
	})
	if err != nil {
		w.logStepFailure("Failed to generate dispatch printout", nil, err)
		return nil, fmt.Errorf("generate printout: %w", err)
	}
	run.PrintoutPath = printoutPath
	w.logger.Info("Printout saved", zap.String("path", printoutPath))

	return &WorkflowResult{
		ShipmentID:      confirmed.ID,
		DispatchOrderID: order.ID,
		TrackingNumber:  confirmed.TrackingNumber,
		LabelPath:       labelPath,
		PrintoutPath:    printoutPath,
	}, nil
}

// waitForConfirmation polls the shipment until the provider reports it
// confirmed. The loop is bounded by the configured attempt budget, and any
// status on the configured fail list aborts immediately instead of waiting it
// out.
func (w *Workflow) waitForConfirmation(ctx context.Context, shipmentID int64) (*shipx.Shipment, error) {
	for attempt := 1; attempt <= w.poll.MaxAttempts; attempt++ {
		shipment, err := w.api.GetShipment(ctx, shipmentID)
		if err != nil {
			return nil, err
		}

		w.logger.Info("Polled shipment status",
			zap.Int64("shipment_id", shipmentID),
			zap.String("status", shipment.Status),
			zap.Int("attempt", attempt),
		)

		if shipment.Status == shipx.StatusConfirmed {
			return shipment, nil
		}
		if w.isFailStatus(shipment.Status) {
			return nil, fmt.Errorf("shipment %d reached terminal status %q", shipmentID, shipment.Status)
		}

		if attempt < w.poll.MaxAttempts {
			select {
			case <-time.After(w.poll.Interval):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("shipment %d was not confirmed after %d attempts", shipmentID, w.poll.MaxAttempts)
}

func (w *Workflow) isFailStatus(status string) bool {
	for _, failStatus := range w.poll.FailStatuses {
		if status == failStatus {
			return true
		}
	}
	return false
}

func (w *Workflow) saveArtifact(filename string, fetch func() ([]byte, error)) (string, error) {
	data, err := fetch()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.outputDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// buildDispatchOrder asks for a pickup at the receiver address tomorrow, with
// the sender as contact.
func buildDispatchOrder(request *shipx.ShipmentRequest, shipment *shipx.Shipment, dispatchPointID int64) *shipx.DispatchOrderRequest {
	sender := request.Sender
	contactName := sender.CompanyName
	if contactName == "" {
		contactName = sender.FirstName + " " + sender.LastName
	}

	return &shipx.DispatchOrderRequest{
		Shipments: []shipx.DispatchShipment{
			{ID: shipment.ID, Status: shipment.Status},
		},
		DispatchPointID: dispatchPointID,
		Name:            contactName,
		Email:           sender.Email,
		Phone:           sender.Phone,
		Address:         request.Receiver.Address,
		DispatchDate:    time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Comment:         request.Comments,
	}
}

func (w *Workflow) recordRun(run *models.WorkflowRun) {
	if w.runs == nil {
		return
	}
	now := time.Now().UTC()
	run.FinishedAt = &now
	if err := w.runs.SaveRun(run); err != nil {
		w.logger.Error("Failed to save workflow run", zap.Error(err))
	}
}

func (w *Workflow) logStepFailure(msg string, payload interface{}, err error) {
	fields := []zap.Field{zap.Error(err)}

	var apiErr *shipx.APIError
	if errors.As(err, &apiErr) {
		fields = append(fields,
			zap.String("endpoint", apiErr.Endpoint),
			zap.Int("status_code", apiErr.StatusCode),
			zap.String("response", apiErr.Body),
		)
	}
	if payload != nil {
		fields = append(fields, zap.Any("payload", payload))
	}

	w.logger.Error(msg, fields...)
}
