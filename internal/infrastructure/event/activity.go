package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/revoa/backend/internal/domain/shared"
)

// ActivityLogger records every domain event as a structured log line,
// giving merchants an audit trail of quote lifecycle changes.
type ActivityLogger struct {
	logger *zap.Logger
}

// NewActivityLogger creates an activity log handler
func NewActivityLogger(logger *zap.Logger) *ActivityLogger {
	return &ActivityLogger{
		logger: logger.Named("activity"),
	}
}

// EventTypes returns nil so the handler receives all events
func (h *ActivityLogger) EventTypes() []string {
	return nil
}

// Handle logs the event
func (h *ActivityLogger) Handle(_ context.Context, evt shared.DomainEvent) error {
	h.logger.Info("domain event",
		zap.String("event_type", evt.EventType()),
		zap.String("aggregate_type", evt.AggregateType()),
		zap.String("aggregate_id", evt.AggregateID().String()),
		zap.String("merchant_id", evt.MerchantID().String()),
		zap.Time("occurred_at", evt.OccurredAt()))
	return nil
}

var _ shared.EventHandler = (*ActivityLogger)(nil)
