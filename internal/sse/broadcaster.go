package sse

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cardnight/ledger/internal/model"
)

// EventMessage is the JSON body of every ledger event frame
type EventMessage struct {
	Type       model.EventType   `json:"type"`
	Timestamp  time.Time         `json:"timestamp"`
	GameID     string            `json:"game_id,omitempty"`
	PlayerID   string            `json:"player_id,omitempty"`
	Badges     []string          `json:"badges,omitempty"`
	Aggregates *model.Aggregates `json:"aggregates,omitempty"`
}

// MessageFromEvent flattens a ledger event and its payload
func MessageFromEvent(event model.Event) EventMessage {
	msg := EventMessage{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		GameID:    string(event.GameID),
		PlayerID:  string(event.PlayerID),
	}
	switch p := event.Payload.(type) {
	case model.GameRecordedPayload:
		msg.Badges = p.Badges
	case model.AggregatesUpdatedPayload:
		agg := p.Aggregates
		msg.Aggregates = &agg
	}
	return msg
}

// Broadcaster publishes ledger events to the topic hubs
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Notify sends the event to the subscribers of its topic
func (b *Broadcaster) Notify(_ context.Context, event model.Event) {
	hub := b.hubManager.GetHub(TopicFor(event.Type))
	if hub == nil {
		return
	}

	data, err := json.Marshal(MessageFromEvent(event))
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("event", string(event.Type)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(string(event.Type), string(data))
}
