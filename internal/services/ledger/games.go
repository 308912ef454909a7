package ledger

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cardnight/ledger/internal/dependencies/clock"
	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/catalog"
	"github.com/cardnight/ledger/internal/services/stats"
)

const timeLayout = "15:04"

// GameInput describes a win to record. Empty fields take defaults:
// today's date, belote and the epic mood.
type GameInput struct {
	WinnerID     model.PlayerID
	Date         string
	Time         string
	Place        string
	GameType     model.GameType
	Mood         model.Mood
	Participants []model.PlayerID
	Comment      string
}

// GameUpdate holds the fields of a game to change. Nil fields are kept.
//
// Badges are kept unless Reroll is set, which draws a fresh set as if the
// game were recorded now, or Badges is given, which replaces them.
type GameUpdate struct {
	WinnerID     *model.PlayerID
	Date         *string
	Time         *string
	Place        *string
	GameType     *model.GameType
	Mood         *model.Mood
	Participants *[]model.PlayerID
	Comment      *string
	Badges       *[]string
	Reroll       bool
}

// RecordGame validates a win, rolls its badges and persists it
func (s *Service) RecordGame(ctx context.Context, in GameInput) (*model.Game, error) {
	game := &model.Game{
		WinnerID:     in.WinnerID,
		Date:         in.Date,
		Time:         in.Time,
		Place:        in.Place,
		GameType:     in.GameType,
		Mood:         in.Mood,
		Participants: in.Participants,
		Comment:      in.Comment,
	}
	if strings.TrimSpace(game.Date) == "" {
		game.Date = clock.Today(s.clock)
	}
	if game.GameType == "" {
		game.GameType = model.GameTypeBelote
	}
	if game.Mood == "" {
		game.Mood = model.MoodEpic
	}

	if err := s.validateGame(ctx, game, true); err != nil {
		return nil, err
	}

	// The new game is not part of the history it is rolled against
	history, err := s.games(ctx)
	if err != nil {
		return nil, err
	}
	game.Badges = s.roller.Roll(game.WinnerID, history, game.Mood, game.Time)
	game.ID = model.GameID(s.random.ID())
	game.CreatedAt = s.clock.Now()

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("game recorded",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(game.WinnerID)),
		slog.Any("badges", game.Badges))
	s.publish(ctx, model.Event{
		Type:     model.EventGameRecorded,
		GameID:   game.ID,
		PlayerID: game.WinnerID,
		Payload:  model.GameRecordedPayload{Badges: game.Badges},
	})

	s.refreshAggregates(ctx)
	return game, nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return s.storage.GetGame(ctx, id)
}

// ListGames returns the matching games, most recent first
func (s *Service) ListGames(ctx context.Context, filter stats.Filter) ([]model.Game, error) {
	games, err := s.games(ctx)
	if err != nil {
		return nil, err
	}
	return stats.FilterGames(games, filter), nil
}

// UpdateGame edits a recorded game
func (s *Service) UpdateGame(ctx context.Context, id model.GameID, update GameUpdate) (*model.Game, error) {
	game, err := s.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.WinnerID != nil {
		game.WinnerID = *update.WinnerID
	}
	if update.Date != nil {
		game.Date = *update.Date
	}
	if update.Time != nil {
		game.Time = *update.Time
	}
	if update.Place != nil {
		game.Place = *update.Place
	}
	if update.GameType != nil {
		game.GameType = *update.GameType
	}
	if update.Mood != nil {
		game.Mood = *update.Mood
	}
	if update.Participants != nil {
		game.Participants = *update.Participants
	}
	if update.Comment != nil {
		game.Comment = *update.Comment
	}

	// A winner deleted since the game was recorded stays as a dangling reference
	if err := s.validateGame(ctx, game, update.WinnerID != nil); err != nil {
		return nil, err
	}

	switch {
	case update.Reroll:
		history, err := s.games(ctx)
		if err != nil {
			return nil, err
		}
		others := slices.DeleteFunc(history, func(g model.Game) bool { return g.ID == id })
		game.Badges = s.roller.Roll(game.WinnerID, others, game.Mood, game.Time)
	case update.Badges != nil:
		badges, err := normalizeBadges(*update.Badges)
		if err != nil {
			return nil, err
		}
		game.Badges = badges
	}

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("game updated",
		slog.String("game_id", string(id)),
		slog.Bool("reroll", update.Reroll))
	s.publish(ctx, model.Event{
		Type:     model.EventGameUpdated,
		GameID:   id,
		PlayerID: game.WinnerID,
		Payload:  model.GameRecordedPayload{Badges: game.Badges},
	})

	s.refreshAggregates(ctx)
	return game, nil
}

// DeleteGame permanently removes a game
func (s *Service) DeleteGame(ctx context.Context, id model.GameID) error {
	game, err := s.storage.GetGame(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteGame(ctx, id); err != nil {
		return err
	}

	s.logger.Info("game deleted", slog.String("game_id", string(id)))
	s.publish(ctx, model.Event{Type: model.EventGameDeleted, GameID: id, PlayerID: game.WinnerID})

	s.refreshAggregates(ctx)
	return nil
}

// PreviewBadges rolls badges for a hypothetical win without recording it
func (s *Service) PreviewBadges(ctx context.Context, winnerID model.PlayerID, mood model.Mood, timeOfDay string) ([]string, error) {
	if winnerID == "" {
		return nil, model.ErrWinnerRequired
	}
	if timeOfDay = strings.TrimSpace(timeOfDay); timeOfDay != "" {
		if _, err := time.Parse(timeLayout, timeOfDay); err != nil {
			return nil, model.ErrInvalidTime
		}
	}

	history, err := s.games(ctx)
	if err != nil {
		return nil, err
	}
	return s.roller.Roll(winnerID, history, mood, timeOfDay), nil
}

// validateGame normalizes free-text fields and checks the rest.
// The winner must exist only when checkWinner is set.
func (s *Service) validateGame(ctx context.Context, game *model.Game, checkWinner bool) error {
	if game.WinnerID == "" {
		return model.ErrWinnerRequired
	}
	if checkWinner {
		if _, err := s.storage.GetPlayer(ctx, game.WinnerID); err != nil {
			return err
		}
	}

	game.Date = strings.TrimSpace(game.Date)
	if _, ok := stats.ParseDate(game.Date); !ok {
		return model.ErrInvalidDate
	}

	game.Time = strings.TrimSpace(game.Time)
	if game.Time != "" {
		if _, err := time.Parse(timeLayout, game.Time); err != nil {
			return model.ErrInvalidTime
		}
	}

	if !catalog.ValidGameType(game.GameType) {
		return model.ErrInvalidGameType
	}
	if !catalog.ValidMood(game.Mood) {
		return model.ErrInvalidMood
	}

	game.Place = strings.TrimSpace(game.Place)
	game.Comment = strings.TrimSpace(game.Comment)

	// The winner is never listed among the other participants
	game.Participants = slices.DeleteFunc(slices.Clone(game.Participants), func(id model.PlayerID) bool {
		return id == "" || id == game.WinnerID
	})
	return nil
}

// normalizeBadges checks hand-picked badges against the catalog and drops duplicates
func normalizeBadges(badges []string) ([]string, error) {
	result := make([]string, 0, len(badges))
	for _, b := range badges {
		b = strings.TrimSpace(b)
		if _, ok := catalog.Lookup(b); !ok {
			return nil, model.ErrUnknownBadge
		}
		if !slices.Contains(result, b) {
			result = append(result, b)
		}
	}
	return result, nil
}
