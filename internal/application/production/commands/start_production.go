package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/bakery-go/internal/application/common"
	"github.com/andrescamacho/bakery-go/internal/domain/production"
	"github.com/andrescamacho/bakery-go/pkg/utils"
)

// StartProductionCommand replaces the tracker's plan and starts a new run
type StartProductionCommand struct {
	Plan []production.PlanItem
}

// StartProductionResponse represents the state right after configuring a run
type StartProductionResponse struct {
	RunID    string
	Statuses []production.Status
	Running  bool
}

// StartProductionHandler handles the StartProduction command
type StartProductionHandler struct {
	tracker *production.Tracker
}

// NewStartProductionHandler creates a new StartProductionHandler
func NewStartProductionHandler(tracker *production.Tracker) *StartProductionHandler {
	return &StartProductionHandler{tracker: tracker}
}

// Handle executes the StartProduction command
func (h *StartProductionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StartProductionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *StartProductionCommand")
	}

	logger := common.LoggerFromContext(ctx)
	runID := utils.GenerateRunID("produce")

	h.tracker.Configure(cmd.Plan)
	statuses := h.tracker.Statuses()

	targets := make(map[string]interface{}, len(statuses))
	for _, status := range statuses {
		targets[status.Flavor.String()] = status.TargetQuantity
	}
	logger.Log("INFO", "Production plan configured", map[string]interface{}{
		"run_id":     runID,
		"batch_size": h.tracker.BatchSize(),
		"flavors":    len(statuses),
		"targets":    targets,
	})

	if !h.tracker.IsRunning() {
		logger.Log("WARNING", "Production plan is empty, nothing to produce", map[string]interface{}{
			"run_id": runID,
		})
	}

	return &StartProductionResponse{
		RunID:    runID,
		Statuses: statuses,
		Running:  h.tracker.IsRunning(),
	}, nil
}
