package queries

import (
	"context"
	"database/sql"
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"
	"postal/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler resolves a tracking number to the parcel's
// current status and placement.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the tracking lookup. Returns an object-not-found error
// when no parcel carries the tracking number.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			origin_office_id,
			current_office_id,
			destination_office_id,
			destination_ward_code,
			chargeable_weight_kg,
			consolidation_route_id,
			batch_id,
			created_at,
			consolidated_at
		FROM orders
		WHERE tracking_number = ?
	`, query.TrackingNumber()).Row()

	var (
		resp                 GetOrderTrackingQueryResponse
		id                   uuid.UUID
		status               int
		originOfficeID       uuid.UUID
		currentOfficeID      uuid.UUID
		destinationOfficeID  uuid.UUID
		consolidationRouteID uuid.NullUUID
		batchID              uuid.NullUUID
		consolidatedAt       sql.NullTime
	)

	err := row.Scan(
		&id,
		&resp.TrackingNumber,
		&status,
		&originOfficeID,
		&currentOfficeID,
		&destinationOfficeID,
		&resp.DestinationWardCode,
		&resp.ChargeableWeightKg,
		&consolidationRouteID,
		&batchID,
		&resp.CreatedAt,
		&consolidatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderTrackingQueryResponse{},
				errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
		}
		return GetOrderTrackingQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	if resp.OriginOfficeID, err = kernel.UUIDFromBytes(originOfficeID[:]); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	if resp.CurrentOfficeID, err = kernel.UUIDFromBytes(currentOfficeID[:]); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	if resp.DestinationOfficeID, err = kernel.UUIDFromBytes(destinationOfficeID[:]); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	if resp.ConsolidationRouteID, err = optionalUUID(consolidationRouteID); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	if resp.BatchID, err = optionalUUID(batchID); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	if consolidatedAt.Valid {
		at := consolidatedAt.Time
		resp.ConsolidatedAt = &at
	}
	resp.Status = order.Status(status).String()

	return resp, nil
}

// optionalUUID converts a nullable database UUID into a domain identifier.
func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
