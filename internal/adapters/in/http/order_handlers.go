package http

import (
	"net/http"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the payload for registering a parcel.
type CreateOrderRequest struct {
	TrackingNumber      string   `json:"trackingNumber"`
	OriginOfficeID      string   `json:"originOfficeId"`
	DestinationOfficeID string   `json:"destinationOfficeId"`
	DestinationWardCode string   `json:"destinationWardCode"`
	ChargeableWeightKg  float64  `json:"chargeableWeightKg"`
	LengthCm            *float64 `json:"lengthCm,omitempty"`
	WidthCm             *float64 `json:"widthCm,omitempty"`
	HeightCm            *float64 `json:"heightCm,omitempty"`
}

// CreateOrderResponse carries the identifier of the registered parcel.
type CreateOrderResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	originID, err := kernel.UUIDFromString(req.OriginOfficeID)
	if err != nil {
		return respondError(ctx, err)
	}
	destinationID, err := kernel.UUIDFromString(req.DestinationOfficeID)
	if err != nil {
		return respondError(ctx, err)
	}
	wardCode, err := kernel.NewWardCode(req.DestinationWardCode)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.TrackingNumber,
		originID, destinationID, wardCode, req.ChargeableWeightKg,
		req.LengthCm, req.WidthCm, req.HeightCm)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:             orderID.String(),
		TrackingNumber: req.TrackingNumber,
	})
}

// AssignOrderToRouteRequest optionally pins the consolidation route; when
// omitted the route is selected by the destination ward.
type AssignOrderToRouteRequest struct {
	RouteID *string `json:"routeId,omitempty"`
}

// AssignOrderToRoute handles POST /api/v1/orders/:id/assign-route.
func (s *Server) AssignOrderToRoute(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignOrderToRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var routeID *kernel.UUID
	if req.RouteID != nil {
		id, idErr := kernel.UUIDFromString(*req.RouteID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		routeID = &id
	}

	cmd, err := commands.NewAssignOrderToRouteCommand(orderID, routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AssignOrderToRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTracking handles GET /api/v1/orders/tracking/:trackingNumber.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	query, err := queries.NewGetOrderTrackingQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetOrderTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderTrackingResponse(resp))
}

// ComputeRoute handles GET /api/v1/routes/compute.
// Expects originOfficeId and wardCode query parameters.
func (s *Server) ComputeRoute(ctx echo.Context) error {
	originID, err := kernel.UUIDFromString(ctx.QueryParam("originOfficeId"))
	if err != nil {
		return respondError(ctx, err)
	}

	wardCode, err := kernel.NewWardCode(ctx.QueryParam("wardCode"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewComputeRouteQuery(originID, wardCode)
	if err != nil {
		return respondError(ctx, err)
	}

	plan, err := s.handlers.ComputeRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRoutePlanResponse(plan))
}
