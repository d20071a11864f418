package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Within a unit of work the read methods used by dispatch and
// reconciliation take row locks on the returned orders, so concurrent
// assignment calls over an overlapping open pool cannot double-assign
// an order.
type OrderRepository interface {
	// Add persists a new order aggregate with its delivery hours.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateAll persists changes to several orders within the current
	// transaction, so a whole assignment batch commits or fails as one.
	UpdateAll(ctx context.Context, aggregates []*order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllOpen retrieves the open order pool available for assignment.
	GetAllOpen(ctx context.Context) ([]*order.Order, error)

	// GetAssignedByCourier retrieves the orders currently assigned to the
	// given courier, the courier's in-flight load.
	GetAssignedByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// GetAllByCourier retrieves every order linked to the given courier,
	// assigned and completed alike. Used for duration chaining and for
	// the derived rating and earnings metrics.
	GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
