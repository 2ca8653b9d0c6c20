package queries

import (
	"context"
	"database/sql"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConsolidationBacklogQueryHandler aggregates the pending order counts
// per active consolidation route.
type GetConsolidationBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetConsolidationBacklogQueryHandler creates a handler for backlog queries.
func NewGetConsolidationBacklogQueryHandler(db *gorm.DB) GetConsolidationBacklogQueryHandler {
	return GetConsolidationBacklogQueryHandler{db: db}
}

// Handle executes the backlog aggregation. Routes with no pending parcels
// are included with zero counts so the board shows the whole province.
func (h GetConsolidationBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetConsolidationBacklogQuery,
) ([]GetConsolidationBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.province_code,
			COUNT(o.id),
			COALESCE(SUM(o.chargeable_weight_kg), 0),
			MIN(o.created_at)
		FROM consolidation_routes r
		LEFT JOIN orders o
			ON o.consolidation_route_id = r.id
			AND o.status = ?
		WHERE r.is_active = true
		GROUP BY r.id, r.name, r.province_code
		ORDER BY r.name
	`, order.AtOriginOffice).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	backlog := make([]GetConsolidationBacklogQueryResponse, 0)
	for rows.Next() {
		var (
			resp            GetConsolidationBacklogQueryResponse
			id              uuid.UUID
			oldestPendingAt sql.NullTime
		)

		err = rows.Scan(
			&id,
			&resp.RouteName,
			&resp.ProvinceCode,
			&resp.PendingOrders,
			&resp.PendingWeightKg,
			&oldestPendingAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.RouteID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if oldestPendingAt.Valid {
			at := oldestPendingAt.Time
			resp.OldestPendingAt = &at
		}

		backlog = append(backlog, resp)
	}

	return backlog, rows.Err()
}
