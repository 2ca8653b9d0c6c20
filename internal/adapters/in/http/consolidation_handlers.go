package http

import (
	"net/http"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateConsolidationRouteRequest is the payload for opening a ward pickup
// loop that feeds a province warehouse.
type CreateConsolidationRouteRequest struct {
	Name                   string   `json:"name"`
	ProvinceCode           string   `json:"provinceCode"`
	DestinationWarehouseID string   `json:"destinationWarehouseId"`
	WardCodes              []string `json:"wardCodes"`
	MaxWeightKg            *float64 `json:"maxWeightKg,omitempty"`
	MaxVolumeCm3           *float64 `json:"maxVolumeCm3,omitempty"`
	MaxOrders              *int     `json:"maxOrders,omitempty"`
}

// CreateConsolidationRouteResponse carries the identifier of the new route.
type CreateConsolidationRouteResponse struct {
	ID string `json:"id"`
}

// CreateConsolidationRoute handles POST /api/v1/consolidation-routes.
func (s *Server) CreateConsolidationRoute(ctx echo.Context) error {
	var req CreateConsolidationRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	provinceCode, err := kernel.NewProvinceCode(req.ProvinceCode)
	if err != nil {
		return respondError(ctx, err)
	}
	warehouseID, err := kernel.UUIDFromString(req.DestinationWarehouseID)
	if err != nil {
		return respondError(ctx, err)
	}
	wardCodes, err := parseWardCodes(req.WardCodes)
	if err != nil {
		return respondError(ctx, err)
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateConsolidationRouteCommand(routeID, req.Name,
		provinceCode, warehouseID, wardCodes,
		req.MaxWeightKg, req.MaxVolumeCm3, req.MaxOrders)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateConsolidationRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateConsolidationRouteResponse{ID: routeID.String()})
}

// UpdateConsolidationRouteRequest carries partial route changes. Capacity is
// replaced only when updateCapacity is true, since null limits are themselves
// meaningful values.
type UpdateConsolidationRouteRequest struct {
	Name           *string  `json:"name,omitempty"`
	WardCodes      []string `json:"wardCodes,omitempty"`
	UpdateCapacity bool     `json:"updateCapacity"`
	MaxWeightKg    *float64 `json:"maxWeightKg,omitempty"`
	MaxVolumeCm3   *float64 `json:"maxVolumeCm3,omitempty"`
	MaxOrders      *int     `json:"maxOrders,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
}

// UpdateConsolidationRoute handles PUT /api/v1/consolidation-routes/:id.
func (s *Server) UpdateConsolidationRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateConsolidationRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	wardCodes, err := parseWardCodes(req.WardCodes)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateConsolidationRouteCommand(routeID, req.Name,
		wardCodes, req.UpdateCapacity,
		req.MaxWeightKg, req.MaxVolumeCm3, req.MaxOrders, req.IsActive)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateConsolidationRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteConsolidationRoute handles DELETE /api/v1/consolidation-routes/:id.
func (s *Server) DeleteConsolidationRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteConsolidationRouteCommand(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteConsolidationRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConsolidateRoute handles POST /api/v1/consolidation-routes/:id/consolidate.
// Runs the route immediately regardless of the readiness rule.
func (s *Server) ConsolidateRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConsolidateRouteCommand(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.ConsolidateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetConsolidationBacklog handles GET /api/v1/consolidation-routes/backlog.
func (s *Server) GetConsolidationBacklog(ctx echo.Context) error {
	backlog, err := s.handlers.GetConsolidationBacklog.Handle(
		ctx.Request().Context(), queries.NewGetConsolidationBacklogQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBacklogEntryResponses(backlog))
}

// ConsolidateReadyRoutesRequest optionally scopes the sweep to one province.
type ConsolidateReadyRoutesRequest struct {
	ProvinceCode *string `json:"provinceCode,omitempty"`
}

// ConsolidateReadyRoutes handles POST /api/v1/consolidation-routes/consolidate-ready.
// Runs every route whose readiness rule fires and reports per-route failures.
func (s *Server) ConsolidateReadyRoutes(ctx echo.Context) error {
	var req ConsolidateReadyRoutesRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var cmd commands.ConsolidateReadyRoutesCommand
	var err error
	if req.ProvinceCode != nil {
		provinceCode, codeErr := kernel.NewProvinceCode(*req.ProvinceCode)
		if codeErr != nil {
			return respondError(ctx, codeErr)
		}
		cmd, err = commands.NewConsolidateReadyRoutesByProvinceCommand(provinceCode)
	} else {
		cmd, err = commands.NewConsolidateReadyRoutesCommand()
	}
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.ConsolidateReadyRoutes.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toConsolidationSweepResponse(result))
}
