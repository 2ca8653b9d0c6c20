package http

import (
	"time"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/kernel"
)

// Read-side and sweep responses. Query handlers return core types keyed by
// kernel identifiers; these DTOs flatten them to strings for the wire.

// OrderTrackingResponse is the wire form of a parcel's tracking state.
type OrderTrackingResponse struct {
	ID                   string     `json:"id"`
	TrackingNumber       string     `json:"trackingNumber"`
	Status               string     `json:"status"`
	OriginOfficeID       string     `json:"originOfficeId"`
	CurrentOfficeID      string     `json:"currentOfficeId"`
	DestinationOfficeID  string     `json:"destinationOfficeId"`
	DestinationWardCode  string     `json:"destinationWardCode"`
	ChargeableWeightKg   float64    `json:"chargeableWeightKg"`
	ConsolidationRouteID *string    `json:"consolidationRouteId,omitempty"`
	BatchID              *string    `json:"batchId,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	ConsolidatedAt       *time.Time `json:"consolidatedAt,omitempty"`
}

func toOrderTrackingResponse(resp queries.GetOrderTrackingQueryResponse) OrderTrackingResponse {
	return OrderTrackingResponse{
		ID:                   resp.ID.String(),
		TrackingNumber:       resp.TrackingNumber,
		Status:               resp.Status,
		OriginOfficeID:       resp.OriginOfficeID.String(),
		CurrentOfficeID:      resp.CurrentOfficeID.String(),
		DestinationOfficeID:  resp.DestinationOfficeID.String(),
		DestinationWardCode:  resp.DestinationWardCode,
		ChargeableWeightKg:   resp.ChargeableWeightKg,
		ConsolidationRouteID: optionalUUIDString(resp.ConsolidationRouteID),
		BatchID:              optionalUUIDString(resp.BatchID),
		CreatedAt:            resp.CreatedAt,
		ConsolidatedAt:       resp.ConsolidatedAt,
	}
}

// RouteStopResponse is one stop of a computed parcel route.
type RouteStopResponse struct {
	OfficeID       string  `json:"officeId"`
	OfficeName     string  `json:"officeName"`
	OfficeType     string  `json:"officeType"`
	StopOrder      int     `json:"stopOrder"`
	HoursFromStart float64 `json:"hoursFromStart"`
}

// RoutePlanResponse is the wire form of a computed parcel route.
type RoutePlanResponse struct {
	Stops           []RouteStopResponse `json:"stops"`
	TotalStops      int                 `json:"totalStops"`
	EstimatedHours  float64             `json:"estimatedHours"`
	TotalDistanceKm float64             `json:"totalDistanceKm"`
	SameRegion      bool                `json:"sameRegion"`
	SameProvince    bool                `json:"sameProvince"`
}

func toRoutePlanResponse(plan queries.ComputeRouteQueryResponse) RoutePlanResponse {
	stops := make([]RouteStopResponse, 0, len(plan.Stops))
	for _, stop := range plan.Stops {
		stops = append(stops, RouteStopResponse{
			OfficeID:       stop.OfficeID.String(),
			OfficeName:     stop.OfficeName,
			OfficeType:     stop.OfficeType,
			StopOrder:      stop.StopOrder,
			HoursFromStart: stop.HoursFromStart,
		})
	}

	return RoutePlanResponse{
		Stops:           stops,
		TotalStops:      plan.TotalStops,
		EstimatedHours:  plan.EstimatedHours,
		TotalDistanceKm: plan.TotalDistanceKm,
		SameRegion:      plan.SameRegion,
		SameProvince:    plan.SameProvince,
	}
}

// DisableImpactResponse quantifies what disabling a transfer route would hit.
type DisableImpactResponse struct {
	RouteID               string `json:"routeId"`
	FromHubID             string `json:"fromHubId"`
	ToHubID               string `json:"toHubId"`
	OutstandingBatchCount int    `json:"outstandingBatchCount"`
	OutstandingOrderCount int    `json:"outstandingOrderCount"`
	HasAlternativeRoute   bool   `json:"hasAlternativeRoute"`
}

func toDisableImpactResponse(impact queries.PreviewDisableImpactQueryResponse) DisableImpactResponse {
	return DisableImpactResponse{
		RouteID:               impact.RouteID.String(),
		FromHubID:             impact.FromHubID.String(),
		ToHubID:               impact.ToHubID.String(),
		OutstandingBatchCount: impact.OutstandingBatchCount,
		OutstandingOrderCount: impact.OutstandingOrderCount,
		HasAlternativeRoute:   impact.HasAlternativeRoute,
	}
}

// ActiveDisruptionResponse is one currently open disruption.
type ActiveDisruptionResponse struct {
	ID                 string     `json:"id"`
	RouteID            string     `json:"routeId"`
	FromHubName        string     `json:"fromHubName"`
	ToHubName          string     `json:"toHubName"`
	DisruptionType     string     `json:"disruptionType"`
	Reason             string     `json:"reason"`
	StartTime          time.Time  `json:"startTime"`
	ExpectedEndTime    *time.Time `json:"expectedEndTime,omitempty"`
	AffectedBatchCount int        `json:"affectedBatchCount"`
	AffectedOrderCount int        `json:"affectedOrderCount"`
}

func toActiveDisruptionResponses(
	disruptions []queries.GetActiveDisruptionsQueryResponse,
) []ActiveDisruptionResponse {
	out := make([]ActiveDisruptionResponse, 0, len(disruptions))
	for _, d := range disruptions {
		out = append(out, ActiveDisruptionResponse{
			ID:                 d.ID.String(),
			RouteID:            d.RouteID.String(),
			FromHubName:        d.FromHubName,
			ToHubName:          d.ToHubName,
			DisruptionType:     d.DisruptionType,
			Reason:             d.Reason,
			StartTime:          d.StartTime,
			ExpectedEndTime:    d.ExpectedEndTime,
			AffectedBatchCount: d.AffectedBatchCount,
			AffectedOrderCount: d.AffectedOrderCount,
		})
	}
	return out
}

// DisruptionHistoryResponse is one past or present disruption of a route.
type DisruptionHistoryResponse struct {
	ID                 string     `json:"id"`
	DisruptionType     string     `json:"disruptionType"`
	Reason             string     `json:"reason"`
	StartTime          time.Time  `json:"startTime"`
	ExpectedEndTime    *time.Time `json:"expectedEndTime,omitempty"`
	ActualEndTime      *time.Time `json:"actualEndTime,omitempty"`
	AffectedBatchCount int        `json:"affectedBatchCount"`
	AffectedOrderCount int        `json:"affectedOrderCount"`
	IsActive           bool       `json:"isActive"`
}

func toDisruptionHistoryResponses(
	history []queries.GetRouteDisruptionHistoryQueryResponse,
) []DisruptionHistoryResponse {
	out := make([]DisruptionHistoryResponse, 0, len(history))
	for _, d := range history {
		out = append(out, DisruptionHistoryResponse{
			ID:                 d.ID.String(),
			DisruptionType:     d.DisruptionType,
			Reason:             d.Reason,
			StartTime:          d.StartTime,
			ExpectedEndTime:    d.ExpectedEndTime,
			ActualEndTime:      d.ActualEndTime,
			AffectedBatchCount: d.AffectedBatchCount,
			AffectedOrderCount: d.AffectedOrderCount,
			IsActive:           d.IsActive,
		})
	}
	return out
}

// BacklogEntryResponse is the pending workload of one consolidation route.
type BacklogEntryResponse struct {
	RouteID         string     `json:"routeId"`
	RouteName       string     `json:"routeName"`
	ProvinceCode    string     `json:"provinceCode"`
	PendingOrders   int        `json:"pendingOrders"`
	PendingWeightKg float64    `json:"pendingWeightKg"`
	OldestPendingAt *time.Time `json:"oldestPendingAt,omitempty"`
}

func toBacklogEntryResponses(
	backlog []queries.GetConsolidationBacklogQueryResponse,
) []BacklogEntryResponse {
	out := make([]BacklogEntryResponse, 0, len(backlog))
	for _, entry := range backlog {
		out = append(out, BacklogEntryResponse{
			RouteID:         entry.RouteID.String(),
			RouteName:       entry.RouteName,
			ProvinceCode:    entry.ProvinceCode,
			PendingOrders:   entry.PendingOrders,
			PendingWeightKg: entry.PendingWeightKg,
			OldestPendingAt: entry.OldestPendingAt,
		})
	}
	return out
}

// SkippedOrderResponse is one parcel the packer left unplaced.
type SkippedOrderResponse struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

// AutoBatchResponse summarizes one automatic batching run.
type AutoBatchResponse struct {
	PackedCount    int                    `json:"packedCount"`
	CreatedBatches int                    `json:"createdBatches"`
	Skipped        []SkippedOrderResponse `json:"skipped"`
}

func toAutoBatchResponse(result commands.AutoBatchOrdersResult) AutoBatchResponse {
	skipped := make([]SkippedOrderResponse, 0, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped = append(skipped, SkippedOrderResponse{
			OrderID: s.OrderID.String(),
			Reason:  s.Reason,
		})
	}

	return AutoBatchResponse{
		PackedCount:    result.PackedCount,
		CreatedBatches: result.CreatedBatches,
		Skipped:        skipped,
	}
}

// SweepFailureResponse is one route the consolidation sweep could not run.
type SweepFailureResponse struct {
	RouteID string `json:"routeId"`
	Error   string `json:"error"`
}

// ConsolidationSweepResponse summarizes one consolidation sweep.
type ConsolidationSweepResponse struct {
	RoutesChecked      int                    `json:"routesChecked"`
	RoutesConsolidated int                    `json:"routesConsolidated"`
	OrdersConsolidated int                    `json:"ordersConsolidated"`
	Failures           []SweepFailureResponse `json:"failures"`
}

func toConsolidationSweepResponse(result commands.ConsolidateReadyRoutesResult) ConsolidationSweepResponse {
	failures := make([]SweepFailureResponse, 0, len(result.Failures))
	for _, f := range result.Failures {
		failures = append(failures, SweepFailureResponse{
			RouteID: f.RouteID.String(),
			Error:   f.Err.Error(),
		})
	}

	return ConsolidationSweepResponse{
		RoutesChecked:      result.RoutesChecked,
		RoutesConsolidated: result.RoutesConsolidated,
		OrdersConsolidated: result.OrdersConsolidated,
		Failures:           failures,
	}
}

func optionalUUIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
