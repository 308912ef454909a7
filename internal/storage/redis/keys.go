package redis

import (
	"fmt"

	"github.com/cardnight/ledger/internal/model"
)

// keys builds the Redis keys under a prefix
type keys struct {
	prefix string
}

// player returns the Redis key for a Player
func (k keys) player(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", k.prefix, id)
}

// game returns the Redis key for a Game
func (k keys) game(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", k.prefix, id)
}

// playerIndex returns the key of the ZSET of player IDs scored by creation time
func (k keys) playerIndex() string {
	return fmt.Sprintf("%s:idx:players", k.prefix)
}

// gameIndex returns the key of the ZSET of game IDs scored by creation time
func (k keys) gameIndex() string {
	return fmt.Sprintf("%s:idx:games", k.prefix)
}
