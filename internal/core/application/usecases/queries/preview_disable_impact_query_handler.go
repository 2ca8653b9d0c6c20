package queries

import (
	"context"
	"database/sql"
	"errors"

	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreviewDisableImpactQueryHandler counts the outstanding traffic between
// the regions a transfer route connects.
type PreviewDisableImpactQueryHandler struct {
	db *gorm.DB
}

// NewPreviewDisableImpactQueryHandler creates a handler for impact previews.
func NewPreviewDisableImpactQueryHandler(db *gorm.DB) PreviewDisableImpactQueryHandler {
	return PreviewDisableImpactQueryHandler{db: db}
}

// Handle resolves the route's hub pair, counts sealed and in-transit
// batches between the two regions, and checks for alternative capacity.
func (h PreviewDisableImpactQueryHandler) Handle(
	ctx context.Context,
	query PreviewDisableImpactQuery,
) (PreviewDisableImpactQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PreviewDisableImpactQueryResponse{}, err
	}

	var (
		fromHubID uuid.UUID
		toHubID   uuid.UUID
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT from_hub_id, to_hub_id
		FROM transfer_routes
		WHERE id = ?
	`, query.RouteID().Bytes()).Row().Scan(&fromHubID, &toHubID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PreviewDisableImpactQueryResponse{},
				errs.NewObjectNotFoundError("transferRoute", query.RouteID().String())
		}
		return PreviewDisableImpactQueryResponse{}, err
	}

	var resp PreviewDisableImpactQueryResponse
	resp.RouteID = query.RouteID()
	if resp.FromHubID, err = kernel.UUIDFromBytes(fromHubID[:]); err != nil {
		return PreviewDisableImpactQueryResponse{}, err
	}
	if resp.ToHubID, err = kernel.UUIDFromBytes(toHubID[:]); err != nil {
		return PreviewDisableImpactQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT b.id),
			COUNT(bi.order_id)
		FROM batches b
		JOIN offices origin ON origin.id = b.origin_office_id
		JOIN offices destination ON destination.id = b.destination_office_id
		JOIN offices from_hub ON from_hub.id = ?
		JOIN offices to_hub ON to_hub.id = ?
		LEFT JOIN batch_items bi ON bi.batch_id = b.id
		WHERE b.status IN (?, ?)
		  AND origin.region_id = from_hub.region_id
		  AND destination.region_id = to_hub.region_id
	`, fromHubID, toHubID, batch.Sealed, batch.InTransit).
		Row().Scan(&resp.OutstandingBatchCount, &resp.OutstandingOrderCount)
	if err != nil {
		return PreviewDisableImpactQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM transfer_routes
			WHERE (from_hub_id = ? OR to_hub_id = ?)
			  AND id != ?
			  AND is_active = true
		)
	`, fromHubID, toHubID, query.RouteID().Bytes()).Row().Scan(&resp.HasAlternativeRoute)
	if err != nil {
		return PreviewDisableImpactQueryResponse{}, err
	}

	return resp, nil
}
