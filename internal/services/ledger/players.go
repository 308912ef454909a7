package ledger

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cardnight/ledger/internal/model"
)

// PlayerInput describes a new player
type PlayerInput struct {
	Name        string
	Emoji       string
	Description string
}

// PlayerUpdate holds the profile fields to change. Nil fields are kept.
type PlayerUpdate struct {
	Name        *string
	Emoji       *string
	Description *string
}

// CreatePlayer adds a player to the group
func (s *Service) CreatePlayer(ctx context.Context, in PlayerInput) (*model.Player, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, model.ErrNameRequired
	}

	emoji := strings.TrimSpace(in.Emoji)
	if emoji == "" {
		emoji = model.DefaultEmoji
	}

	player := &model.Player{
		ID:          model.PlayerID(s.random.ID()),
		Name:        name,
		Emoji:       emoji,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name))
	s.publish(ctx, model.Event{Type: model.EventPlayerCreated, PlayerID: player.ID})

	return player, nil
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// ListPlayers returns every player in creation order
func (s *Service) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return s.players(ctx)
}

// ResolvePlayer returns the player, or the unknown-player placeholder if
// the ID no longer refers to anyone
func (s *Service) ResolvePlayer(ctx context.Context, id model.PlayerID) (model.Player, error) {
	p, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return model.UnknownPlayer(id), nil
		}
		return model.Player{}, err
	}
	return *p, nil
}

// UpdatePlayer edits a player's profile. The cached aggregates are untouched.
func (s *Service) UpdatePlayer(ctx context.Context, id model.PlayerID, update PlayerUpdate) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, model.ErrNameRequired
		}
		player.Name = name
	}
	if update.Emoji != nil {
		player.Emoji = strings.TrimSpace(*update.Emoji)
		if player.Emoji == "" {
			player.Emoji = model.DefaultEmoji
		}
	}
	if update.Description != nil {
		player.Description = strings.TrimSpace(*update.Description)
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player updated", slog.String("player_id", string(id)))
	s.publish(ctx, model.Event{Type: model.EventPlayerUpdated, PlayerID: id})

	return player, nil
}

// DeletePlayer removes a player. Their games stay and show a placeholder.
func (s *Service) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.logger.Info("player deleted", slog.String("player_id", string(id)))
	s.publish(ctx, model.Event{Type: model.EventPlayerDeleted, PlayerID: id})

	return nil
}
