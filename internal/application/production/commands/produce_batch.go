package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/bakery-go/internal/adapters/metrics"
	"github.com/andrescamacho/bakery-go/internal/application/common"
	"github.com/andrescamacho/bakery-go/internal/domain/production"
)

// ProduceBatchCommand advances the current run by one batch
type ProduceBatchCommand struct {
	RunID string
}

// ProduceBatchResponse represents the run state after one batch
type ProduceBatchResponse struct {
	Statuses   []production.Status
	Running    bool
	Produced   map[production.Flavor]int // doughnuts made in this batch
	BatchValue decimal.Decimal
}

// TotalProduced returns the number of doughnuts made in this batch
func (r *ProduceBatchResponse) TotalProduced() int {
	total := 0
	for _, n := range r.Produced {
		total += n
	}
	return total
}

// ProduceBatchHandler handles the ProduceBatch command
type ProduceBatchHandler struct {
	tracker *production.Tracker
}

// NewProduceBatchHandler creates a new ProduceBatchHandler
func NewProduceBatchHandler(tracker *production.Tracker) *ProduceBatchHandler {
	return &ProduceBatchHandler{tracker: tracker}
}

// Handle executes the ProduceBatch command
func (h *ProduceBatchHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ProduceBatchCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ProduceBatchCommand")
	}

	logger := common.LoggerFromContext(ctx)

	if !h.tracker.IsRunning() {
		return &ProduceBatchResponse{
			Statuses:   h.tracker.Statuses(),
			Running:    false,
			Produced:   map[production.Flavor]int{},
			BatchValue: decimal.Zero,
		}, nil
	}

	before := make(map[production.Flavor]int)
	for _, status := range h.tracker.Statuses() {
		before[status.Flavor] = status.ProducedQuantity
	}

	statuses := h.tracker.ProduceBatch()

	produced := make(map[production.Flavor]int, len(statuses))
	value := decimal.Zero
	var bakedAt time.Time
	for _, status := range statuses {
		made := status.ProducedQuantity - before[status.Flavor]
		produced[status.Flavor] = made
		if made == 0 {
			continue
		}
		doughnuts := h.tracker.Produced(status.Flavor)
		for _, d := range doughnuts[len(doughnuts)-made:] {
			value = value.Add(d.Price())
			if d.ProducedAt().After(bakedAt) {
				bakedAt = d.ProducedAt()
			}
		}
	}

	metrics.RecordBatch(produced, statuses, value)

	response := &ProduceBatchResponse{
		Statuses:   statuses,
		Running:    h.tracker.IsRunning(),
		Produced:   produced,
		BatchValue: value,
	}

	metadata := map[string]interface{}{
		"run_id":   cmd.RunID,
		"produced": response.TotalProduced(),
		"value":    value.String(),
		"running":  response.Running,
	}
	if !bakedAt.IsZero() {
		metadata["baked_at"] = bakedAt.Format(time.RFC3339)
	}
	logger.Log("INFO", "Batch produced", metadata)

	return response, nil
}
