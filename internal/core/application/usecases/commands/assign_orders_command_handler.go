package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// AssignOrdersCommandHandler runs the dispatch algorithm for a courier
// inside one transaction. The open pool is read with row locks, so two
// concurrent dispatch runs over overlapping pools cannot hand the same
// order to two couriers.
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
	now        func() time.Time
}

// NewAssignOrdersCommandHandler creates a handler for dispatch runs.
func NewAssignOrdersCommandHandler(uowFactory UoWFactory) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		now:        time.Now,
	}
}

// AssignOrdersResult reports the outcome of one dispatch run. AssignedAt
// is the shared assignment timestamp and is meaningful only when at
// least one order was accepted.
type AssignOrdersResult struct {
	OrderIDs   []kernel.UUID
	AssignedAt time.Time
}

// Handle dispatches open orders to the courier and returns the IDs of
// the newly assigned orders in acceptance order. All orders assigned by
// one call share a single assignment timestamp and commit atomically.
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, command AssignOrdersCommand) (AssignOrdersResult, error) {
	if err := command.Validate(); err != nil {
		return AssignOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aCourier, err := uow.CourierRepository().Get(ctx, command.CourierID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	load, err := orderRepo.GetAssignedByCourier(ctx, aCourier.ID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	pool, err := orderRepo.GetAllOpen(ctx)
	if err != nil {
		return AssignOrdersResult{}, err
	}

	assignedAt := h.now().UTC()
	accepted, err := h.dispatcher.Dispatch(aCourier, load, pool, assignedAt)
	if err != nil {
		return AssignOrdersResult{}, err
	}

	if len(accepted) > 0 {
		if err = orderRepo.UpdateAll(ctx, accepted); err != nil {
			return AssignOrdersResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	result := AssignOrdersResult{
		OrderIDs:   make([]kernel.UUID, 0, len(accepted)),
		AssignedAt: assignedAt,
	}
	for _, anOrder := range accepted {
		result.OrderIDs = append(result.OrderIDs, anOrder.ID())
	}
	return result, nil
}
