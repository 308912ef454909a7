package sse

import (
	"errors"
	"fmt"

	"github.com/cardnight/ledger/internal/model"
)

// ErrUnknownTopic is returned for a topic name outside Topics
var ErrUnknownTopic = errors.New("unknown topic")

// Topic names a stream of ledger events
type Topic string

const (
	TopicGames   Topic = "games"
	TopicPlayers Topic = "players"
)

// Topics lists every topic a client can subscribe to
var Topics = []Topic{TopicGames, TopicPlayers}

// ParseTopic validates a topic name, defaulting to games when empty
func ParseTopic(s string) (Topic, error) {
	if s == "" {
		return TopicGames, nil
	}
	for _, t := range Topics {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTopic, s)
}

// TopicFor returns the topic an event is published on
func TopicFor(eventType model.EventType) Topic {
	switch eventType {
	case model.EventGameRecorded, model.EventGameUpdated, model.EventGameDeleted:
		return TopicGames
	default:
		return TopicPlayers
	}
}
