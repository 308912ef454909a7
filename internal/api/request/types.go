package request

import (
	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/ledger"
)

// CreatePlayerRequest is the request body for adding a player
type CreatePlayerRequest struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// ToInput converts the request to a ledger.PlayerInput
func (r CreatePlayerRequest) ToInput() ledger.PlayerInput {
	return ledger.PlayerInput{
		Name:        r.Name,
		Emoji:       r.Emoji,
		Description: r.Description,
	}
}

// UpdatePlayerRequest is the request body for editing a player. Omitted fields are kept.
type UpdatePlayerRequest struct {
	Name        *string `json:"name"`
	Emoji       *string `json:"emoji"`
	Description *string `json:"description"`
}

// ToUpdate converts the request to a ledger.PlayerUpdate
func (r UpdatePlayerRequest) ToUpdate() ledger.PlayerUpdate {
	return ledger.PlayerUpdate{
		Name:        r.Name,
		Emoji:       r.Emoji,
		Description: r.Description,
	}
}

// RecordGameRequest is the request body for recording a win
type RecordGameRequest struct {
	WinnerID     string   `json:"winner_id"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Place        string   `json:"place"`
	GameType     string   `json:"game_type"`
	Mood         string   `json:"mood"`
	Participants []string `json:"participants"`
	Comment      string   `json:"comment"`
}

// ToInput converts the request to a ledger.GameInput
func (r RecordGameRequest) ToInput() ledger.GameInput {
	return ledger.GameInput{
		WinnerID:     model.PlayerID(r.WinnerID),
		Date:         r.Date,
		Time:         r.Time,
		Place:        r.Place,
		GameType:     model.GameType(r.GameType),
		Mood:         model.Mood(r.Mood),
		Participants: playerIDs(r.Participants),
		Comment:      r.Comment,
	}
}

// UpdateGameRequest is the request body for editing a game. Omitted fields are kept.
type UpdateGameRequest struct {
	WinnerID     *string   `json:"winner_id"`
	Date         *string   `json:"date"`
	Time         *string   `json:"time"`
	Place        *string   `json:"place"`
	GameType     *string   `json:"game_type"`
	Mood         *string   `json:"mood"`
	Participants *[]string `json:"participants"`
	Comment      *string   `json:"comment"`
	Badges       *[]string `json:"badges"`
	Reroll       bool      `json:"reroll"`
}

// ToUpdate converts the request to a ledger.GameUpdate
func (r UpdateGameRequest) ToUpdate() ledger.GameUpdate {
	u := ledger.GameUpdate{
		Date:    r.Date,
		Time:    r.Time,
		Place:   r.Place,
		Comment: r.Comment,
		Badges:  r.Badges,
		Reroll:  r.Reroll,
	}
	if r.WinnerID != nil {
		id := model.PlayerID(*r.WinnerID)
		u.WinnerID = &id
	}
	if r.GameType != nil {
		gt := model.GameType(*r.GameType)
		u.GameType = &gt
	}
	if r.Mood != nil {
		m := model.Mood(*r.Mood)
		u.Mood = &m
	}
	if r.Participants != nil {
		ids := playerIDs(*r.Participants)
		u.Participants = &ids
	}
	return u
}

// RollBadgesRequest is the request body for previewing the badges of a win
type RollBadgesRequest struct {
	WinnerID string `json:"winner_id"`
	Mood     string `json:"mood"`
	Time     string `json:"time"`
}

func playerIDs(ids []string) []model.PlayerID {
	if ids == nil {
		return nil
	}
	result := make([]model.PlayerID, len(ids))
	for i, id := range ids {
		result[i] = model.PlayerID(id)
	}
	return result
}
