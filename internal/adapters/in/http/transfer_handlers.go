package http

import (
	"net/http"
	"time"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateTransferRouteRequest is the payload for connecting two regional
// hubs. The reverse direction is created automatically.
type CreateTransferRouteRequest struct {
	FromHubID    string  `json:"fromHubId"`
	ToHubID      string  `json:"toHubId"`
	DistanceKm   float64 `json:"distanceKm"`
	TransitHours float64 `json:"transitHours"`
	Priority     int     `json:"priority"`
}

// CreateTransferRouteResponse carries the identifier of the forward route.
type CreateTransferRouteResponse struct {
	ID string `json:"id"`
}

// CreateTransferRoute handles POST /api/v1/transfer-routes.
func (s *Server) CreateTransferRoute(ctx echo.Context) error {
	var req CreateTransferRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fromHubID, err := kernel.UUIDFromString(req.FromHubID)
	if err != nil {
		return respondError(ctx, err)
	}
	toHubID, err := kernel.UUIDFromString(req.ToHubID)
	if err != nil {
		return respondError(ctx, err)
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransferRouteCommand(routeID, fromHubID, toHubID,
		req.DistanceKm, req.TransitHours, req.Priority)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateTransferRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateTransferRouteResponse{ID: routeID.String()})
}

// DisableRouteRequest opens a disruption on a transfer route.
type DisableRouteRequest struct {
	DisruptionType  string     `json:"disruptionType"`
	Reason          string     `json:"reason"`
	ExpectedEndTime *time.Time `json:"expectedEndTime,omitempty"`
}

// DisableRoute handles POST /api/v1/transfer-routes/:id/disable.
func (s *Server) DisableRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req DisableRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	disruptionType, err := parseDisruptionType(req.DisruptionType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDisableRouteCommand(routeID, disruptionType,
		req.Reason, req.ExpectedEndTime)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DisableRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EnableRoute handles POST /api/v1/transfer-routes/:id/enable.
func (s *Server) EnableRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewEnableRouteCommand(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.EnableRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PreviewDisableImpact handles GET /api/v1/transfer-routes/:id/impact.
func (s *Server) PreviewDisableImpact(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewPreviewDisableImpactQuery(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	impact, err := s.handlers.PreviewDisableImpact.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDisableImpactResponse(impact))
}

// GetRouteDisruptionHistory handles GET /api/v1/transfer-routes/:id/disruptions.
func (s *Server) GetRouteDisruptionHistory(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetRouteDisruptionHistoryQuery(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.handlers.GetRouteDisruptionHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDisruptionHistoryResponses(history))
}

// GetActiveDisruptions handles GET /api/v1/disruptions/active.
func (s *Server) GetActiveDisruptions(ctx echo.Context) error {
	disruptions, err := s.handlers.GetActiveDisruptions.Handle(
		ctx.Request().Context(), queries.NewGetActiveDisruptionsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toActiveDisruptionResponses(disruptions))
}
