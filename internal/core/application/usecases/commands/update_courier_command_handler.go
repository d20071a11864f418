package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// UpdateCourierCommandHandler applies partial courier updates and
// reconciles the courier's assigned load afterwards. A downgrade that
// leaves the courier over capacity reverts assigned orders, lightest
// first, back to the open pool in the same transaction.
type UpdateCourierCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
}

// NewUpdateCourierCommandHandler creates a handler for courier updates.
func NewUpdateCourierCommandHandler(uowFactory UoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle loads the courier, applies the requested changes, reconciles
// the capacity invariant and commits courier and reverted orders
// atomically.
func (h UpdateCourierCommandHandler) Handle(ctx context.Context, command UpdateCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	aCourier, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	if transport := command.Transport(); transport != nil {
		if err = aCourier.ChangeTransport(*transport); err != nil {
			return err
		}
	}
	if regions, ok := command.Regions(); ok {
		if err = aCourier.SetRegions(regions); err != nil {
			return err
		}
	}
	if hours, ok := command.WorkingHours(); ok {
		if err = aCourier.SetWorkingHours(hours); err != nil {
			return err
		}
	}

	assigned, err := orderRepo.GetAssignedByCourier(ctx, aCourier.ID())
	if err != nil {
		return err
	}

	reverted, err := h.reconciler.Reconcile(aCourier, assigned)
	if err != nil {
		return err
	}

	if len(reverted) > 0 {
		if err = orderRepo.UpdateAll(ctx, reverted); err != nil {
			return err
		}
	}

	if err = courierRepo.Update(ctx, aCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
