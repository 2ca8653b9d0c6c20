package http

import (
	"net/http"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateBatchRequest is the payload for opening a shipment batch between
// two offices.
type CreateBatchRequest struct {
	OriginOfficeID      string   `json:"originOfficeId"`
	DestinationOfficeID string   `json:"destinationOfficeId"`
	MaxWeightKg         float64  `json:"maxWeightKg"`
	MaxVolumeCm3        *float64 `json:"maxVolumeCm3,omitempty"`
	MaxOrders           *int     `json:"maxOrders,omitempty"`
}

// CreateBatchResponse carries the identifier of the new batch.
type CreateBatchResponse struct {
	ID string `json:"id"`
}

// CreateBatch handles POST /api/v1/batches.
func (s *Server) CreateBatch(ctx echo.Context) error {
	var req CreateBatchRequest
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

	batchID := kernel.NewUUID()
	cmd, err := commands.NewCreateBatchCommand(batchID, originID, destinationID,
		req.MaxWeightKg, req.MaxVolumeCm3, req.MaxOrders)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateBatch.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateBatchResponse{ID: batchID.String()})
}

// AutoBatchOrdersRequest asks the packer to open batches for every waiting
// parcel between an office pair.
type AutoBatchOrdersRequest struct {
	OfficeID            string   `json:"officeId"`
	DestinationOfficeID string   `json:"destinationOfficeId"`
	MaxWeightKg         float64  `json:"maxWeightKg"`
	MaxVolumeCm3        *float64 `json:"maxVolumeCm3,omitempty"`
	MaxOrders           *int     `json:"maxOrders,omitempty"`
}

// AutoBatchOrders handles POST /api/v1/batches/auto.
func (s *Server) AutoBatchOrders(ctx echo.Context) error {
	var req AutoBatchOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	officeID, err := kernel.UUIDFromString(req.OfficeID)
	if err != nil {
		return respondError(ctx, err)
	}
	destinationID, err := kernel.UUIDFromString(req.DestinationOfficeID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAutoBatchOrdersCommand(officeID, destinationID,
		req.MaxWeightKg, req.MaxVolumeCm3, req.MaxOrders)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.AutoBatchOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAutoBatchResponse(result))
}

// AddOrdersToBatchRequest lists the parcels to load into a batch.
type AddOrdersToBatchRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// AddOrdersToBatch handles POST /api/v1/batches/:id/orders.
func (s *Server) AddOrdersToBatch(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddOrdersToBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewAddOrdersToBatchCommand(batchID, orderIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AddOrdersToBatch.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderFromBatch handles DELETE /api/v1/batches/:id/orders/:orderId.
func (s *Server) RemoveOrderFromBatch(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderFromBatchCommand(batchID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RemoveOrderFromBatch.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BatchLifecycleRequest identifies the office performing a batch transition.
// Origin offices seal, depart, and cancel; destination offices arrive and
// distribute.
type BatchLifecycleRequest struct {
	ActorOfficeID string `json:"actorOfficeId"`
}

func (s *Server) batchLifecycleIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var req BatchLifecycleRequest
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("requestBody", err)
	}

	actorID, err := kernel.UUIDFromString(req.ActorOfficeID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return batchID, actorID, nil
}

// SealBatch handles POST /api/v1/batches/:id/seal.
func (s *Server) SealBatch(ctx echo.Context) error {
	batchID, actorID, err := s.batchLifecycleIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSealBatchCommand(batchID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.SealBatch.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DepartBatch handles POST /api/v1/batches/:id/depart.
func (s *Server) DepartBatch(ctx echo.Context) error {
	batchID, actorID, err := s.batchLifecycleIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDepartBatchCommand(batchID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DepartBatch.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ArriveBatch handles POST /api/v1/batches/:id/arrive.
func (s *Server) ArriveBatch(ctx echo.Context) error {
	batchID, actorID, err := s.batchLifecycleIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewArriveBatchCommand(batchID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.ArriveBatch.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DistributeBatch handles POST /api/v1/batches/:id/distribute.
func (s *Server) DistributeBatch(ctx echo.Context) error {
	batchID, actorID, err := s.batchLifecycleIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDistributeBatchCommand(batchID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DistributeBatch.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelBatch handles POST /api/v1/batches/:id/cancel.
func (s *Server) CancelBatch(ctx echo.Context) error {
	batchID, actorID, err := s.batchLifecycleIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelBatchCommand(batchID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CancelBatch.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
