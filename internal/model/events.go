package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Player events
	EventPlayerCreated     EventType = "player_created"
	EventPlayerUpdated     EventType = "player_updated"
	EventPlayerDeleted     EventType = "player_deleted"
	EventAggregatesUpdated EventType = "aggregates_updated"

	// Game events
	EventGameRecorded EventType = "game_recorded"
	EventGameUpdated  EventType = "game_updated"
	EventGameDeleted  EventType = "game_deleted"
)

// Event describes a change to the ledger
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID   // Empty for player-only events
	PlayerID  PlayerID // The player who won or was affected
	Payload   any      // Type-specific data
}

// GameRecordedPayload contains data for game recorded events
type GameRecordedPayload struct {
	Badges []string
}

// AggregatesUpdatedPayload contains data for aggregates updated events
type AggregatesUpdatedPayload struct {
	Aggregates Aggregates
}
