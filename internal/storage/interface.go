package storage

import (
	"context"
	"sort"

	"github.com/cardnight/ledger/internal/model"
)

// Storage defines the interface for data persistence.
// Writes are last-write-wins; no backend resolves concurrent edits.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// SavePlayerAggregates overwrites only the cached projection of a player
	SavePlayerAggregates(ctx context.Context, id model.PlayerID, agg model.Aggregates) error

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}

// SortPlayers orders players by creation time, then by ID
func SortPlayers(players []*model.Player) {
	sort.Slice(players, func(i, j int) bool {
		if !players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].CreatedAt.Before(players[j].CreatedAt)
		}
		return players[i].ID < players[j].ID
	})
}

// SortGames orders games by creation time, then by ID
func SortGames(games []*model.Game) {
	sort.Slice(games, func(i, j int) bool {
		if !games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].CreatedAt.Before(games[j].CreatedAt)
		}
		return games[i].ID < games[j].ID
	})
}
