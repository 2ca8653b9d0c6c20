// Package http provides the inbound HTTP adapter. It translates JSON
// requests into commands and queries and maps domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/consolidation"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/domain/model/order"
	"postal/internal/core/domain/model/transfer"
	"postal/internal/core/domain/services"
	"postal/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server exposes.
type Handlers struct {
	CreateOffice             commands.CreateOfficeCommandHandler
	CreateOrder              commands.CreateOrderCommandHandler
	AssignOrderToRoute       commands.AssignOrderToRouteCommandHandler
	CreateConsolidationRoute commands.CreateConsolidationRouteCommandHandler
	UpdateConsolidationRoute commands.UpdateConsolidationRouteCommandHandler
	DeleteConsolidationRoute commands.DeleteConsolidationRouteCommandHandler
	ConsolidateRoute         commands.ConsolidateRouteCommandHandler
	ConsolidateReadyRoutes   commands.ConsolidateReadyRoutesCommandHandler
	CreateBatch              commands.CreateBatchCommandHandler
	AddOrdersToBatch         commands.AddOrdersToBatchCommandHandler
	RemoveOrderFromBatch     commands.RemoveOrderFromBatchCommandHandler
	AutoBatchOrders          commands.AutoBatchOrdersCommandHandler
	SealBatch                commands.SealBatchCommandHandler
	DepartBatch              commands.DepartBatchCommandHandler
	ArriveBatch              commands.ArriveBatchCommandHandler
	DistributeBatch          commands.DistributeBatchCommandHandler
	CancelBatch              commands.CancelBatchCommandHandler
	CreateTransferRoute      commands.CreateTransferRouteCommandHandler
	DisableRoute             commands.DisableRouteCommandHandler
	EnableRoute              commands.EnableRouteCommandHandler

	GetOrderTracking          queries.GetOrderTrackingQueryHandler
	ComputeRoute              queries.ComputeRouteQueryHandler
	PreviewDisableImpact      queries.PreviewDisableImpactQueryHandler
	GetActiveDisruptions      queries.GetActiveDisruptionsQueryHandler
	GetRouteDisruptionHistory queries.GetRouteDisruptionHistoryQueryHandler
	GetConsolidationBacklog   queries.GetConsolidationBacklogQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/offices", s.CreateOffice)

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/assign-route", s.AssignOrderToRoute)
	api.GET("/orders/tracking/:trackingNumber", s.GetOrderTracking)

	api.GET("/routes/compute", s.ComputeRoute)

	api.POST("/consolidation-routes", s.CreateConsolidationRoute)
	api.PUT("/consolidation-routes/:id", s.UpdateConsolidationRoute)
	api.DELETE("/consolidation-routes/:id", s.DeleteConsolidationRoute)
	api.POST("/consolidation-routes/:id/consolidate", s.ConsolidateRoute)
	api.POST("/consolidation-routes/consolidate-ready", s.ConsolidateReadyRoutes)
	api.GET("/consolidation-routes/backlog", s.GetConsolidationBacklog)

	api.POST("/batches", s.CreateBatch)
	api.POST("/batches/auto", s.AutoBatchOrders)
	api.POST("/batches/:id/orders", s.AddOrdersToBatch)
	api.DELETE("/batches/:id/orders/:orderId", s.RemoveOrderFromBatch)
	api.POST("/batches/:id/seal", s.SealBatch)
	api.POST("/batches/:id/depart", s.DepartBatch)
	api.POST("/batches/:id/arrive", s.ArriveBatch)
	api.POST("/batches/:id/distribute", s.DistributeBatch)
	api.POST("/batches/:id/cancel", s.CancelBatch)

	api.POST("/transfer-routes", s.CreateTransferRoute)
	api.POST("/transfer-routes/:id/disable", s.DisableRoute)
	api.POST("/transfer-routes/:id/enable", s.EnableRoute)
	api.GET("/transfer-routes/:id/impact", s.PreviewDisableImpact)
	api.GET("/transfer-routes/:id/disruptions", s.GetRouteDisruptionHistory)
	api.GET("/disruptions/active", s.GetActiveDisruptions)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain errors to HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrNoRouteAvailable):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrOperationIsForbidden):
		code = http.StatusForbidden
	case isConflict(err):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// isConflict reports whether the error is a state conflict rather than a
// malformed request: the request was well-formed but the aggregate refuses.
func isConflict(err error) bool {
	return errors.Is(err, batch.ErrBatchIsEmpty) ||
		errors.Is(err, batch.ErrBatchIsNotModifiable) ||
		errors.Is(err, batch.ErrOrderDoesNotFit) ||
		errors.Is(err, batch.ErrOrderAlreadyInBatch) ||
		errors.Is(err, batch.ErrOrderNotInBatch) ||
		errors.Is(err, order.ErrOrderAlreadyBatched) ||
		errors.Is(err, order.ErrOrderNotBatched) ||
		errors.Is(err, consolidation.ErrRouteIsInactive) ||
		errors.Is(err, consolidation.ErrNoPendingOrders) ||
		errors.Is(err, transfer.ErrRouteAlreadyDisabled) ||
		errors.Is(err, transfer.ErrRouteAlreadyActive) ||
		errors.Is(err, errs.ErrVersionIsInvalid)
}

// badRequest returns a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// parseOfficeType maps the wire name of an office type to the domain enum.
func parseOfficeType(value string) (office.Type, error) {
	types := map[string]office.Type{
		"WardPost":          office.WardPost,
		"WardWarehouse":     office.WardWarehouse,
		"ProvincePost":      office.ProvincePost,
		"ProvinceWarehouse": office.ProvinceWarehouse,
		"Hub":               office.Hub,
	}
	if t, ok := types[value]; ok {
		return t, nil
	}
	return office.UnknownType, errs.NewValueIsInvalidError("officeType")
}

// parseDisruptionType maps the wire name of a disruption type to the domain enum.
func parseDisruptionType(value string) (transfer.DisruptionType, error) {
	types := map[string]transfer.DisruptionType{
		"RoadBlocked":  transfer.RoadBlocked,
		"PolicyChange": transfer.PolicyChange,
		"Emergency":    transfer.Emergency,
		"Maintenance":  transfer.Maintenance,
		"Other":        transfer.Other,
	}
	if t, ok := types[value]; ok {
		return t, nil
	}
	return transfer.UnknownDisruption, errs.NewValueIsInvalidError("disruptionType")
}

// parseWardCodes converts wire ward codes into domain codes.
func parseWardCodes(values []string) ([]kernel.WardCode, error) {
	codes := make([]kernel.WardCode, 0, len(values))
	for _, value := range values {
		code, err := kernel.NewWardCode(value)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}
