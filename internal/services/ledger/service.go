// Package ledger records players and games and serves the derived views.
//
// Every read model is recomputed from a fresh storage snapshot through the
// pure stats, achievements and titles packages.
package ledger

import (
	"context"
	"log/slog"

	"github.com/cardnight/ledger/internal/dependencies/clock"
	"github.com/cardnight/ledger/internal/dependencies/random"
	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/awards"
	"github.com/cardnight/ledger/internal/storage"
)

// Notifier receives ledger events once the change is persisted
type Notifier interface {
	Notify(ctx context.Context, event model.Event)
}

// NopNotifier drops every event
type NopNotifier struct{}

// Notify does nothing
func (NopNotifier) Notify(context.Context, model.Event) {}

// Service is the entry point for every ledger operation
type Service struct {
	storage  storage.Storage
	roller   *awards.Roller
	clock    clock.Clock
	random   random.Random
	notifier Notifier
	logger   *slog.Logger
}

// New creates a new ledger Service
func New(
	storage storage.Storage,
	roller *awards.Roller,
	clock clock.Clock,
	random random.Random,
	notifier Notifier,
	logger *slog.Logger,
) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{
		storage:  storage,
		roller:   roller,
		clock:    clock,
		random:   random,
		notifier: notifier,
		logger:   logger.With(slog.String("component", "ledger")),
	}
}

func (s *Service) publish(ctx context.Context, event model.Event) {
	event.Timestamp = s.clock.Now()
	s.notifier.Notify(ctx, event)
}

// snapshot loads every player and game
func (s *Service) snapshot(ctx context.Context) ([]model.Player, []model.Game, error) {
	players, err := s.players(ctx)
	if err != nil {
		return nil, nil, err
	}
	games, err := s.games(ctx)
	if err != nil {
		return nil, nil, err
	}
	return players, games, nil
}

func (s *Service) players(ctx context.Context) ([]model.Player, error) {
	list, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	players := make([]model.Player, len(list))
	for i, p := range list {
		players[i] = *p
	}
	return players, nil
}

func (s *Service) games(ctx context.Context) ([]model.Game, error) {
	list, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	games := make([]model.Game, len(list))
	for i, g := range list {
		games[i] = *g
	}
	return games, nil
}
