package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// DefaultEmoji is the avatar given to players created without one
const DefaultEmoji = "🃏"

// Aggregates are cached projections of a player's record.
// They are recomputed from the game list and never authoritative.
type Aggregates struct {
	Wins          int `json:"wins"`
	CurrentStreak int `json:"current_streak"`
	MaxStreak     int `json:"max_streak"`
}

// Player represents a member of the card group
type Player struct {
	ID          PlayerID
	Name        string
	Emoji       string
	Description string
	CreatedAt   time.Time

	Aggregates Aggregates
}

// UnknownPlayer returns the placeholder shown when a game references a deleted player
func UnknownPlayer(id PlayerID) Player {
	return Player{
		ID:    id,
		Name:  "Joueur inconnu",
		Emoji: "❓",
	}
}
