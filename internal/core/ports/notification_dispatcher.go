package ports

import (
	"context"
	"time"
)

// Notification event names emitted by the use case layer.
const (
	EventBatchDeparted          = "batch.departed"
	EventBatchArrived           = "batch.arrived"
	EventBatchDistributed       = "batch.distributed"
	EventConsolidationCompleted = "consolidation.completed"
	EventRouteDisrupted         = "route.disrupted"
	EventRouteRestored          = "route.restored"
)

// NotificationEvent describes one domain occurrence worth telling the
// outside world about.
type NotificationEvent struct {
	Name       string
	OccurredAt time.Time
	Attributes map[string]string
}

// NotificationDispatcher publishes domain events to interested parties.
// Dispatch is fire-and-forget: implementations must not fail the calling
// operation, and callers ignore delivery errors.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, event NotificationEvent)
}
