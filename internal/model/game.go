package model

import (
	"slices"
	"time"
)

// GameID uniquely identifies a recorded game
type GameID string

// GameType is the card game that was played
type GameType string

const (
	GameTypeBelote       GameType = "belote"
	GameTypeTarot        GameType = "tarot"
	GameTypeGinBresilien GameType = "gin-bresilien"
	GameTypePoker        GameType = "poker"
	GameTypeUno          GameType = "uno"
	GameTypeRami         GameType = "rami"
	GameTypeBataille     GameType = "bataille"
	GameTypePresident    GameType = "president"
	GameTypeCoinche      GameType = "coinche"
	GameTypeBridge       GameType = "bridge"
	GameTypeBlackjack    GameType = "blackjack"
	GameTypeOther        GameType = "autre"
)

// Mood describes the atmosphere of a game
type Mood string

const (
	MoodEpic      Mood = "epic"
	MoodChill     Mood = "chill"
	MoodIntense   Mood = "intense"
	MoodFunny     Mood = "funny"
	MoodDramatic  Mood = "dramatic"
	MoodRevenge   Mood = "revenge"
	MoodChaos     Mood = "chaos"
	MoodTense     Mood = "tense"
	MoodLegendary Mood = "legendary"
)

// Game is a single recorded win
type Game struct {
	ID       GameID
	WinnerID PlayerID

	Date  string // Calendar date, YYYY-MM-DD
	Time  string // HH:MM, empty if unknown
	Place string // Empty if unknown

	GameType GameType
	Mood     Mood

	// Others present at the table. Excludes the winner by convention.
	Participants []PlayerID

	// Badge identifiers, set semantics
	Badges []string

	Comment   string
	CreatedAt time.Time // Insertion order marker
}

// Involves returns true if the player won or took part in the game
func (g *Game) Involves(id PlayerID) bool {
	return g.WinnerID == id || slices.Contains(g.Participants, id)
}

// HasBadge returns true if the badge was awarded for this game
func (g *Game) HasBadge(badge string) bool {
	return slices.Contains(g.Badges, badge)
}
