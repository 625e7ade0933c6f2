package statgen

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Events published on the rpg-toolkit bus. The source is always the
// character the session belongs to.
const (
	EventPoolRolled      = "statgen.pool_rolled"
	EventValuePicked     = "statgen.value_picked"
	EventAssignmentReset = "statgen.assignment_reset"
	EventScoresApplied   = "statgen.scores_applied"
)

// Event context keys
const (
	EventKeyCharacterID = "character_id"
	EventKeyMethod      = "method"
	EventKeyPosition    = "position"
	EventKeyAttribute   = "attribute"
	EventKeyValue       = "value"
	EventKeyPool        = "pool"
	EventKeyScores      = "scores"
)

// publish never fails the calling operation; subscriber errors are logged.
func (o *orchestrator) publish(ctx context.Context, eventType string, source core.Entity, data map[string]any) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, source, nil)
	event.Context().Set(EventKeyCharacterID, source.GetID())
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "event subscriber failed",
			"event", eventType,
			"character_id", source.GetID(),
			"error", err,
		)
	}
}
