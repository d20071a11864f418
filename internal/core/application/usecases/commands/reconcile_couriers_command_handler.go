package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// ReconcileCouriersCommandHandler restores the capacity invariant
// across the whole fleet in one transaction.
type ReconcileCouriersCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
}

// NewReconcileCouriersCommandHandler creates a handler for fleet reconciliation.
func NewReconcileCouriersCommandHandler(uowFactory UoWFactory) ReconcileCouriersCommandHandler {
	return ReconcileCouriersCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle walks every courier, reverts over-capacity assignments
// lightest first and persists the reverted orders.
func (h ReconcileCouriersCommandHandler) Handle(ctx context.Context, command ReconcileCouriersCommand) error {
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

	couriers, err := uow.CourierRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	for _, aCourier := range couriers {
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
	}

	return uow.Commit(ctx)
}
