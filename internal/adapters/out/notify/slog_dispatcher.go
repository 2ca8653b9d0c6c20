// Package notify provides the outbound notification adapter. Events are
// written to the structured log; downstream delivery (SMS, partner webhooks)
// hangs off the same dispatch point.
package notify

import (
	"context"
	"log/slog"

	"postal/internal/core/ports"
)

// SlogDispatcher publishes notification events to a structured logger.
type SlogDispatcher struct {
	logger *slog.Logger
}

// NewSlogDispatcher creates a dispatcher writing to the given logger.
func NewSlogDispatcher(logger *slog.Logger) *SlogDispatcher {
	return &SlogDispatcher{
		logger: logger.With("component", "notifications"),
	}
}

// Dispatch logs the event. Never fails the calling operation.
func (d *SlogDispatcher) Dispatch(ctx context.Context, event ports.NotificationEvent) {
	attrs := make([]any, 0, 2+2*len(event.Attributes))
	attrs = append(attrs, "event", event.Name, "occurredAt", event.OccurredAt)
	for key, value := range event.Attributes {
		attrs = append(attrs, key, value)
	}

	d.logger.InfoContext(ctx, "Domain event dispatched", attrs...)
}

var _ ports.NotificationDispatcher = (*SlogDispatcher)(nil)
