package queries

import (
	"context"
	"database/sql"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/transfer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDisruptionsQueryHandler retrieves open disruptions with the hub
// names of the routes they block.
type GetActiveDisruptionsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDisruptionsQueryHandler creates a handler for the open
// disruption listing.
func NewGetActiveDisruptionsQueryHandler(db *gorm.DB) GetActiveDisruptionsQueryHandler {
	return GetActiveDisruptionsQueryHandler{db: db}
}

// Handle executes the listing, newest disruptions first.
func (h GetActiveDisruptionsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDisruptionsQuery,
) ([]GetActiveDisruptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.route_id,
			from_hub.name,
			to_hub.name,
			d.disruption_type,
			d.reason,
			d.start_time,
			d.expected_end_time,
			d.affected_batch_count,
			d.affected_order_count
		FROM disruptions d
		JOIN transfer_routes r ON r.id = d.route_id
		JOIN offices from_hub ON from_hub.id = r.from_hub_id
		JOIN offices to_hub ON to_hub.id = r.to_hub_id
		WHERE d.is_active = true
		ORDER BY d.start_time DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	disruptions := make([]GetActiveDisruptionsQueryResponse, 0)
	for rows.Next() {
		var (
			resp            GetActiveDisruptionsQueryResponse
			id              uuid.UUID
			routeID         uuid.UUID
			disruptionType  int
			expectedEndTime sql.NullTime
		)

		err = rows.Scan(
			&id,
			&routeID,
			&resp.FromHubName,
			&resp.ToHubName,
			&disruptionType,
			&resp.Reason,
			&resp.StartTime,
			&expectedEndTime,
			&resp.AffectedBatchCount,
			&resp.AffectedOrderCount,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RouteID, err = kernel.UUIDFromBytes(routeID[:]); err != nil {
			return nil, err
		}
		if expectedEndTime.Valid {
			at := expectedEndTime.Time
			resp.ExpectedEndTime = &at
		}
		resp.DisruptionType = transfer.DisruptionType(disruptionType).String()

		disruptions = append(disruptions, resp)
	}

	return disruptions, rows.Err()
}
