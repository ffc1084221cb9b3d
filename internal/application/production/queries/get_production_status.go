package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/bakery-go/internal/application/common"
	"github.com/andrescamacho/bakery-go/internal/domain/production"
)

// GetProductionStatusQuery reads the current run's statuses without changing them
type GetProductionStatusQuery struct{}

// GetProductionStatusResponse contains the current statuses and running flag
type GetProductionStatusResponse struct {
	Statuses  []production.Status
	Running   bool
	BatchSize int
}

// GetProductionStatusHandler handles the GetProductionStatus query
type GetProductionStatusHandler struct {
	tracker *production.Tracker
}

// NewGetProductionStatusHandler creates a new GetProductionStatusHandler
func NewGetProductionStatusHandler(tracker *production.Tracker) *GetProductionStatusHandler {
	return &GetProductionStatusHandler{tracker: tracker}
}

// Handle executes the GetProductionStatus query
func (h *GetProductionStatusHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetProductionStatusQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetProductionStatusQuery")
	}

	return &GetProductionStatusResponse{
		Statuses:  h.tracker.Statuses(),
		Running:   h.tracker.IsRunning(),
		BatchSize: h.tracker.BatchSize(),
	}, nil
}
