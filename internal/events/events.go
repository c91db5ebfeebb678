package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Progression event types emitted by the study service.
const (
	// TypeAchievementUnlocked is emitted once per (user, achievement) pair.
	TypeAchievementUnlocked = "achievement_unlocked"

	// TypeLevelUp is emitted when an XP award crosses a level threshold.
	TypeLevelUp = "level_up"

	// TypeStreakExtended is emitted when an activity extends a study streak.
	TypeStreakExtended = "streak_extended"
)

// ProgressionEvent notifies the embedding application that a user's
// progression state changed in a way it may want to surface (toasts,
// notifications, feed entries). Delivery is the application's concern;
// the engine only emits.
type ProgressionEvent struct {
	// ID is a unique identifier for this event.
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants.
	Type string `json:"type"`

	// UserID identifies the user whose progression changed.
	UserID uuid.UUID `json:"user_id"`

	// Payload contains the event-specific data serialized as JSON.
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created.
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *ProgressionEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewProgressionEvent creates a progression event of the given type for a
// user, serializing the payload to JSON.
func NewProgressionEvent(eventType string, userID uuid.UUID, payload interface{}) (*ProgressionEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &ProgressionEvent{
		ID:        uuid.New(),
		Type:      eventType,
		UserID:    userID,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ProgressionEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *ProgressionEvent) error
}
