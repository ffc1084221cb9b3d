package commands_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakery-go/internal/application/common"
	"github.com/andrescamacho/bakery-go/internal/application/production/commands"
	"github.com/andrescamacho/bakery-go/internal/application/production/queries"
	"github.com/andrescamacho/bakery-go/internal/domain/production"
	"github.com/andrescamacho/bakery-go/test/helpers"
)

func newTracker(t *testing.T) *production.Tracker {
	t.Helper()
	factory := helpers.NewMockDoughnutFactory()
	factory.Price = decimal.RequireFromString("1.25")
	tracker, err := production.NewTracker(factory, 50)
	require.NoError(t, err)
	return tracker
}

func TestStartProductionHandler_ConfiguresTracker(t *testing.T) {
	tracker := newTracker(t)
	handler := commands.NewStartProductionHandler(tracker)

	resp, err := handler.Handle(context.Background(), &commands.StartProductionCommand{
		Plan: []production.PlanItem{production.MustPlanItem(production.FlavorVanilla, 120)},
	})

	require.NoError(t, err)
	started := resp.(*commands.StartProductionResponse)
	assert.True(t, started.Running)
	assert.NotEmpty(t, started.RunID)
	require.Len(t, started.Statuses, 1)
	assert.Equal(t, 120, started.Statuses[0].Remaining())
	assert.True(t, tracker.IsRunning())
}

func TestStartProductionHandler_RejectsWrongRequest(t *testing.T) {
	handler := commands.NewStartProductionHandler(newTracker(t))

	_, err := handler.Handle(context.Background(), &commands.ProduceBatchCommand{})

	assert.Error(t, err)
}

func TestProduceBatchHandler_ReportsBatchDeltaAndValue(t *testing.T) {
	tracker := newTracker(t)
	tracker.Configure([]production.PlanItem{
		production.MustPlanItem(production.FlavorVanilla, 120),
		production.MustPlanItem(production.FlavorCaramel, 4),
	})
	handler := commands.NewProduceBatchHandler(tracker)

	resp, err := handler.Handle(context.Background(), &commands.ProduceBatchCommand{RunID: "produce-test"})
	require.NoError(t, err)
	first := resp.(*commands.ProduceBatchResponse)

	assert.Equal(t, 50, first.Produced[production.FlavorVanilla])
	assert.Equal(t, 4, first.Produced[production.FlavorCaramel])
	assert.Equal(t, 54, first.TotalProduced())
	assert.True(t, decimal.RequireFromString("67.5").Equal(first.BatchValue))
	assert.True(t, first.Running)

	resp, err = handler.Handle(context.Background(), &commands.ProduceBatchCommand{RunID: "produce-test"})
	require.NoError(t, err)
	second := resp.(*commands.ProduceBatchResponse)

	assert.Equal(t, 50, second.Produced[production.FlavorVanilla])
	assert.Equal(t, 0, second.Produced[production.FlavorCaramel])
}

func TestProduceBatchHandler_IdleTrackerProducesNothing(t *testing.T) {
	tracker := newTracker(t)
	handler := commands.NewProduceBatchHandler(tracker)

	resp, err := handler.Handle(context.Background(), &commands.ProduceBatchCommand{})

	require.NoError(t, err)
	batch := resp.(*commands.ProduceBatchResponse)
	assert.False(t, batch.Running)
	assert.Zero(t, batch.TotalProduced())
	assert.True(t, batch.BatchValue.IsZero())
	assert.Empty(t, batch.Statuses)
}

func TestGetProductionStatusHandler_ReadsWithoutMutating(t *testing.T) {
	tracker := newTracker(t)
	tracker.Configure([]production.PlanItem{production.MustPlanItem(production.FlavorStrawberry, 75)})
	tracker.ProduceBatch()
	handler := queries.NewGetProductionStatusHandler(tracker)

	for i := 0; i < 2; i++ {
		resp, err := handler.Handle(context.Background(), &queries.GetProductionStatusQuery{})
		require.NoError(t, err)
		status := resp.(*queries.GetProductionStatusResponse)
		assert.True(t, status.Running)
		assert.Equal(t, 50, status.BatchSize)
		require.Len(t, status.Statuses, 1)
		assert.Equal(t, 50, status.Statuses[0].ProducedQuantity)
		assert.Equal(t, 25, status.Statuses[0].Remaining())
	}
}

func TestProduceBatchHandler_LogsBakeTime(t *testing.T) {
	tracker := newTracker(t)
	tracker.Configure([]production.PlanItem{production.MustPlanItem(production.FlavorChocolate, 3)})
	logger := helpers.NewMockRunLogger()
	ctx := common.WithLogger(context.Background(), logger)

	_, err := commands.NewProduceBatchHandler(tracker).Handle(ctx, &commands.ProduceBatchCommand{RunID: "produce-test"})

	require.NoError(t, err)
	entries := logger.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Batch produced", entries[0].Message)
	assert.Equal(t, "2025-01-15T10:00:00Z", entries[0].Metadata["baked_at"])
	assert.Equal(t, 3, entries[0].Metadata["produced"])
}
