package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
)

// CourierItem is the payload for one courier in a bulk create request.
type CourierItem struct {
	Transport    string   `json:"transport"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

// CreateCouriersRequest is the bulk courier create request body.
type CreateCouriersRequest struct {
	Data []CourierItem `json:"data"`
}

// PatchCourierRequest is the partial courier update body. Absent fields
// are left untouched; unknown fields are rejected at decode time.
type PatchCourierRequest struct {
	Transport    *string   `json:"transport"`
	Regions      *[]int64  `json:"regions"`
	WorkingHours *[]string `json:"working_hours"`
}

// CourierView is the courier read model returned by GET and PATCH.
// Rating is omitted while the courier has no completed orders.
type CourierView struct {
	ID           string   `json:"id"`
	Transport    string   `json:"transport"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
	Rating       *float64 `json:"rating,omitempty"`
	Earnings     int64    `json:"earnings"`
}

// OrderItem is the payload for one order in a bulk create request.
type OrderItem struct {
	Weight        float64  `json:"weight"`
	Region        int64    `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
}

// CreateOrdersRequest is the bulk order create request body.
type CreateOrdersRequest struct {
	Data []OrderItem `json:"data"`
}

// IDRef carries a single entity identifier.
type IDRef struct {
	ID string `json:"id"`
}

// CreatedCouriersResponse lists the identifiers of created couriers.
type CreatedCouriersResponse struct {
	Couriers []IDRef `json:"couriers"`
}

// CreatedOrdersResponse lists the identifiers of created orders.
type CreatedOrdersResponse struct {
	Orders []IDRef `json:"orders"`
}

// AssignOrdersRequest names the courier to dispatch orders to.
type AssignOrdersRequest struct {
	CourierID string `json:"courier_id"`
}

// AssignOrdersResponse lists the orders assigned by one dispatch run.
// AssignTime is omitted when nothing was assigned.
type AssignOrdersResponse struct {
	Orders     []IDRef `json:"orders"`
	AssignTime *string `json:"assign_time,omitempty"`
}

// CompleteOrderRequest marks an order as delivered. CompleteTime is
// optional; when absent the server clock is used.
type CompleteOrderRequest struct {
	CourierID    string     `json:"courier_id"`
	OrderID      string     `json:"order_id"`
	CompleteTime *time.Time `json:"complete_time"`
}

// CompleteOrderResponse acknowledges a completed order.
type CompleteOrderResponse struct {
	OrderID string `json:"order_id"`
}

// ItemError points at an invalid item of a bulk create request.
type ItemError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// ValidationErrorBody lists the offending items of a rejected bulk
// create request. Exactly one of Couriers/Orders is set.
type ValidationErrorBody struct {
	Couriers []ItemError `json:"couriers,omitempty"`
	Orders   []ItemError `json:"orders,omitempty"`
}

// ValidationErrorResponse is the 400 body for bulk create requests.
type ValidationErrorResponse struct {
	ValidationError ValidationErrorBody `json:"validation_error"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func courierViewFrom(response queries.GetCourierQueryResponse) CourierView {
	view := CourierView{
		ID:           response.ID.String(),
		Transport:    response.Transport,
		Regions:      response.Regions,
		WorkingHours: response.WorkingHours,
		Rating:       response.Rating,
		Earnings:     response.Earnings,
	}
	if view.Regions == nil {
		view.Regions = []int64{}
	}
	if view.WorkingHours == nil {
		view.WorkingHours = []string{}
	}
	return view
}
