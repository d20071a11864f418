package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/services"
)

// CompleteOrderCommandHandler marks orders as delivered. The delivery
// duration is chained within the order's assignment batch, so the
// courier's other orders are loaded alongside the target.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	completer  services.OrderCompleter
	now        func() time.Time
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		completer:  services.NewOrderCompleter(),
		now:        time.Now,
	}
}

// Handle completes the order within a transaction. Re-completing an
// already delivered order commits no change and reports success, so
// retries are safe.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aCourier, err := uow.CourierRepository().Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	anOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	batch, err := orderRepo.GetAllByCourier(ctx, aCourier.ID())
	if err != nil {
		return err
	}

	at := h.now().UTC()
	if ct := command.CompleteTime(); ct != nil {
		at = *ct
	}

	if err = h.completer.Complete(aCourier, anOrder, batch, at); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, anOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
