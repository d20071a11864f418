package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// GetCourierQueryHandler assembles the courier read model. Unlike the
// other read paths it goes through the repositories: rating and
// earnings are computed by the domain metric functions over the
// courier's full order history, so the handler needs restored
// aggregates, not raw rows.
type GetCourierQueryHandler struct {
	courierRepo ports.CourierRepository
	orderRepo   ports.OrderRepository
}

// NewGetCourierQueryHandler creates a handler for courier detail queries.
func NewGetCourierQueryHandler(
	courierRepo ports.CourierRepository,
	orderRepo ports.OrderRepository,
) GetCourierQueryHandler {
	return GetCourierQueryHandler{
		courierRepo: courierRepo,
		orderRepo:   orderRepo,
	}
}

// Handle returns the courier's attributes together with its current
// rating and earnings.
func (h GetCourierQueryHandler) Handle(
	ctx context.Context,
	query GetCourierQuery,
) (GetCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierQueryResponse{}, err
	}

	aCourier, err := h.courierRepo.Get(ctx, query.CourierID())
	if err != nil {
		return GetCourierQueryResponse{}, err
	}

	history, err := h.orderRepo.GetAllByCourier(ctx, aCourier.ID())
	if err != nil {
		return GetCourierQueryResponse{}, err
	}

	completed := make([]*order.Order, 0, len(history))
	for _, anOrder := range history {
		if anOrder.Status() == order.Completed {
			completed = append(completed, anOrder)
		}
	}

	response := GetCourierQueryResponse{
		ID:        aCourier.ID(),
		Transport: aCourier.Transport().String(),
		Earnings:  services.Earnings(aCourier, history),
	}

	if rating, ok := services.Rating(completed); ok {
		response.Rating = &rating
	}

	for _, region := range aCourier.Regions() {
		response.Regions = append(response.Regions, region.Int64())
	}
	for _, window := range aCourier.WorkingHours() {
		response.WorkingHours = append(response.WorkingHours, window.String())
	}

	return response, nil
}
