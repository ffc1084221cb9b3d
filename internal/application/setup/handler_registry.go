package setup

import (
	"reflect"

	"github.com/andrescamacho/bakery-go/internal/application/common"
	productionCommands "github.com/andrescamacho/bakery-go/internal/application/production/commands"
	productionQueries "github.com/andrescamacho/bakery-go/internal/application/production/queries"
	"github.com/andrescamacho/bakery-go/internal/domain/production"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	tracker *production.Tracker
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(tracker *production.Tracker) *HandlerRegistry {
	return &HandlerRegistry{tracker: tracker}
}

// RegisterProductionHandlers registers all production command and query handlers with the mediator
//
// This method registers:
//   - StartProductionCommand → StartProductionHandler
//   - ProduceBatchCommand → ProduceBatchHandler
//   - GetProductionStatusQuery → GetProductionStatusHandler
//
// All three share the same tracker, so the mediator must be driven from a single goroutine.
func (r *HandlerRegistry) RegisterProductionHandlers(m common.Mediator) error {
	if err := m.Register(
		reflect.TypeOf(&productionCommands.StartProductionCommand{}),
		productionCommands.NewStartProductionHandler(r.tracker),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&productionCommands.ProduceBatchCommand{}),
		productionCommands.NewProduceBatchHandler(r.tracker),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&productionQueries.GetProductionStatusQuery{}),
		productionQueries.NewGetProductionStatusHandler(r.tracker),
	); err != nil {
		return err
	}

	return nil
}
