package ledger

import (
	"context"

	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/achievements"
	"github.com/cardnight/ledger/internal/services/catalog"
	"github.com/cardnight/ledger/internal/services/stats"
	"github.com/cardnight/ledger/internal/services/titles"
)

// BadgeCount is a badge in a player's collection with the number of wins carrying it
type BadgeCount struct {
	Badge catalog.BadgeDefinition
	Count int
}

// Profile is everything shown on a player's page
type Profile struct {
	Player       model.Player
	Stats        stats.Stats
	Streaks      stats.StreakStats
	Title        string
	NextTitle    *titles.Threshold // nil at the top of the ladder
	Achievements []achievements.Achievement
	Badges       []BadgeCount
	Wins         []model.Game // Most recent first
}

// Profile builds a player's page from the current game list
func (s *Service) Profile(ctx context.Context, id model.PlayerID) (*Profile, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	games, err := s.games(ctx)
	if err != nil {
		return nil, err
	}

	in := achievements.BuildInput(id, games)
	counts := stats.BadgeCounts(in.Wins)

	p := &Profile{
		Player:       *player,
		Stats:        in.Stats,
		Streaks:      stats.Streaks(id, games),
		Title:        titles.TitleFor(in.Stats.Wins),
		Achievements: achievements.Evaluate(in),
		Badges:       make([]BadgeCount, 0, len(in.Badges)),
		Wins:         in.Wins,
	}
	if next, ok := titles.Next(in.Stats.Wins); ok {
		p.NextTitle = &next
	}
	for _, b := range in.Badges {
		p.Badges = append(p.Badges, BadgeCount{Badge: catalog.Resolve(b), Count: counts[b]})
	}
	return p, nil
}

// Leaderboard ranks every player by wins
func (s *Service) Leaderboard(ctx context.Context) ([]stats.Standing, error) {
	players, games, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Leaderboard(players, games), nil
}

// Podium returns the top three players
func (s *Service) Podium(ctx context.Context) ([]stats.Standing, error) {
	players, games, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Podium(players, games), nil
}

// Overview summarizes the group's history
func (s *Service) Overview(ctx context.Context) (stats.Overview, error) {
	players, games, err := s.snapshot(ctx)
	if err != nil {
		return stats.Overview{}, err
	}
	return stats.ComputeOverview(players, games), nil
}

// Places returns the distinct places games were played at
func (s *Service) Places(ctx context.Context) ([]string, error) {
	games, err := s.games(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Places(games), nil
}
