// Package http exposes the dispatch service over REST. Handlers decode
// and validate request bodies, translate them into commands and queries,
// and map domain errors onto status codes.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createCourierHandler commands.CreateCourierCommandHandler
	updateCourierHandler commands.UpdateCourierCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	assignOrdersHandler  commands.AssignOrdersCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	getCourierHandler    queries.GetCourierQueryHandler
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createCourierHandler commands.CreateCourierCommandHandler,
	updateCourierHandler commands.UpdateCourierCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrdersHandler commands.AssignOrdersCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getCourierHandler queries.GetCourierQueryHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
) *Server {
	return &Server{
		createCourierHandler: createCourierHandler,
		updateCourierHandler: updateCourierHandler,
		createOrderHandler:   createOrderHandler,
		assignOrdersHandler:  assignOrdersHandler,
		completeOrderHandler: completeOrderHandler,
		getCourierHandler:    getCourierHandler,
		getOpenOrdersHandler: getOpenOrdersHandler,
	}
}

// RegisterRoutes binds the API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/couriers", s.CreateCouriers)
	e.PATCH("/couriers/:id", s.PatchCourier)
	e.GET("/couriers/:id", s.GetCourier)
	e.POST("/orders", s.CreateOrders)
	e.GET("/orders", s.GetOpenOrders)
	e.POST("/orders/assign", s.AssignOrders)
	e.POST("/orders/complete", s.CompleteOrder)
}

// CreateCouriers handles POST /couriers. The request is all-or-nothing:
// every item must validate before any courier is created.
func (s *Server) CreateCouriers(ctx echo.Context) error {
	var request CreateCouriersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if len(request.Data) == 0 {
		return badRequest(ctx, "data must contain at least one courier")
	}

	cmds := make([]commands.CreateCourierCommand, 0, len(request.Data))
	var itemErrors []ItemError
	for i, item := range request.Data {
		cmd, err := commands.NewCreateCourierCommand(item.Transport, item.Regions, item.WorkingHours)
		if err != nil {
			itemErrors = append(itemErrors, ItemError{Index: i, Message: err.Error()})
			continue
		}
		cmds = append(cmds, cmd)
	}
	if len(itemErrors) > 0 {
		return ctx.JSON(http.StatusBadRequest, ValidationErrorResponse{
			ValidationError: ValidationErrorBody{Couriers: itemErrors},
		})
	}

	response := CreatedCouriersResponse{Couriers: make([]IDRef, 0, len(cmds))}
	for _, cmd := range cmds {
		if err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return mapError(ctx, err)
		}
		response.Couriers = append(response.Couriers, IDRef{ID: cmd.CourierID().String()})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// PatchCourier handles PATCH /couriers/:id. Unknown fields in the body
// are rejected, and assignments that no longer fit the courier are
// reverted within the update transaction.
func (s *Server) PatchCourier(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.DisallowUnknownFields()

	var request PatchCourierRequest
	if err = decoder.Decode(&request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	cmd, err := commands.NewUpdateCourierCommand(
		courierID, request.Transport, request.Regions, request.WorkingHours)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondCourierView(ctx, courierID)
}

// GetCourier handles GET /couriers/:id.
func (s *Server) GetCourier(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	return s.respondCourierView(ctx, courierID)
}

// CreateOrders handles POST /orders with the same all-or-nothing bulk
// shape as courier creation.
func (s *Server) CreateOrders(ctx echo.Context) error {
	var request CreateOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if len(request.Data) == 0 {
		return badRequest(ctx, "data must contain at least one order")
	}

	cmds := make([]commands.CreateOrderCommand, 0, len(request.Data))
	var itemErrors []ItemError
	for i, item := range request.Data {
		cmd, err := commands.NewCreateOrderCommand(item.Weight, item.Region, item.DeliveryHours)
		if err != nil {
			itemErrors = append(itemErrors, ItemError{Index: i, Message: err.Error()})
			continue
		}
		cmds = append(cmds, cmd)
	}
	if len(itemErrors) > 0 {
		return ctx.JSON(http.StatusBadRequest, ValidationErrorResponse{
			ValidationError: ValidationErrorBody{Orders: itemErrors},
		})
	}

	response := CreatedOrdersResponse{Orders: make([]IDRef, 0, len(cmds))}
	for _, cmd := range cmds {
		if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return mapError(ctx, err)
		}
		response.Orders = append(response.Orders, IDRef{ID: cmd.OrderID().String()})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetOpenOrders handles GET /orders - the open pool, heaviest first.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	responses, err := s.getOpenOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetOpenOrdersQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	type openOrder struct {
		ID     string  `json:"id"`
		Weight float64 `json:"weight"`
		Region int64   `json:"region"`
	}
	orders := make([]openOrder, 0, len(responses))
	for _, r := range responses {
		orders = append(orders, openOrder{ID: r.ID.String(), Weight: r.Weight, Region: r.Region})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// AssignOrders handles POST /orders/assign.
func (s *Server) AssignOrders(ctx echo.Context) error {
	var request AssignOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier_id")
	}

	cmd, err := commands.NewAssignOrdersCommand(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.assignOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	response := AssignOrdersResponse{Orders: make([]IDRef, 0, len(result.OrderIDs))}
	for _, id := range result.OrderIDs {
		response.Orders = append(response.Orders, IDRef{ID: id.String()})
	}
	if len(result.OrderIDs) > 0 {
		assignTime := result.AssignedAt.Format(time.RFC3339)
		response.AssignTime = &assignTime
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteOrder handles POST /orders/complete. Completing an already
// delivered order by the same courier succeeds without change.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	var request CompleteOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier_id")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order_id")
	}

	cmd, err := commands.NewCompleteOrderCommand(courierID, orderID, request.CompleteTime)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CompleteOrderResponse{OrderID: orderID.String()})
}

func (s *Server) respondCourierView(ctx echo.Context, courierID kernel.UUID) error {
	query, err := queries.NewGetCourierQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierViewFrom(response))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrCourierOverCapacity):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}
