package service

import (
	"context"

	"github.com/rs/zerolog"

	"blogapi/internal/events"
)

// publish emits evt after the write it describes has committed. Delivery
// failures are logged and never fail the request.
func publish(ctx context.Context, publisher events.Publisher, evt events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("event", evt.Type).
			Uint("entity_id", evt.EntityID).
			Msg("publish event failed")
	}
}
