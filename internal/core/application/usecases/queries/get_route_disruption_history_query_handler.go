package queries

import (
	"context"
	"database/sql"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/transfer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRouteDisruptionHistoryQueryHandler retrieves the disruption history of
// a transfer route from the database.
type GetRouteDisruptionHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteDisruptionHistoryQueryHandler creates a handler for disruption
// history queries.
func NewGetRouteDisruptionHistoryQueryHandler(db *gorm.DB) GetRouteDisruptionHistoryQueryHandler {
	return GetRouteDisruptionHistoryQueryHandler{db: db}
}

// Handle executes the history listing, newest disruptions first.
func (h GetRouteDisruptionHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetRouteDisruptionHistoryQuery,
) ([]GetRouteDisruptionHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			disruption_type,
			reason,
			start_time,
			expected_end_time,
			actual_end_time,
			affected_batch_count,
			affected_order_count,
			is_active
		FROM disruptions
		WHERE route_id = ?
		ORDER BY start_time DESC
	`, query.RouteID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetRouteDisruptionHistoryQueryResponse, 0)
	for rows.Next() {
		var (
			resp            GetRouteDisruptionHistoryQueryResponse
			id              uuid.UUID
			disruptionType  int
			expectedEndTime sql.NullTime
			actualEndTime   sql.NullTime
		)

		err = rows.Scan(
			&id,
			&disruptionType,
			&resp.Reason,
			&resp.StartTime,
			&expectedEndTime,
			&actualEndTime,
			&resp.AffectedBatchCount,
			&resp.AffectedOrderCount,
			&resp.IsActive,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if expectedEndTime.Valid {
			at := expectedEndTime.Time
			resp.ExpectedEndTime = &at
		}
		if actualEndTime.Valid {
			at := actualEndTime.Time
			resp.ActualEndTime = &at
		}
		resp.DisruptionType = transfer.DisruptionType(disruptionType).String()

		history = append(history, resp)
	}

	return history, rows.Err()
}
