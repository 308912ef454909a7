// Package achievements evaluates the cumulative milestones of a player.
//
// Achievements are never stored. The whole registry is evaluated against a
// player's history on every call.
package achievements

import (
	"slices"
	"strings"

	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/stats"
)

// Category groups related achievements in the profile
type Category string

const (
	CategoryDebut      Category = "debut"
	CategoryVictories  Category = "victoires"
	CategoryStreaks    Category = "series"
	CategoryRegularity Category = "regularite"
	CategoryWinRate    Category = "taux"
	CategoryDiversity  Category = "diversite"
	CategoryBadges     Category = "badges"
	CategorySpecial    Category = "special"
	CategoryDomination Category = "domination"
)

// Input is everything a condition may look at
type Input struct {
	Stats     stats.Stats
	MaxStreak int

	// Distinct badges across the player's wins
	Badges []string

	// Games won by the player
	Wins []model.Game

	// Running stats after each game the player took part in, in date order
	Progression []stats.Stats
}

// Definition is a single unlockable milestone
type Definition struct {
	ID          string
	Icon        string
	Name        string
	Description string
	Category    Category
	// Condition reports whether the achievement is earned for the input
	Condition func(*Input) bool
}

// Achievement is a definition evaluated against a player's history
type Achievement struct {
	ID          string
	Icon        string
	Name        string
	Description string
	Category    Category
	Earned      bool
}

// Definitions returns a copy of the registry in display order
func Definitions() []Definition {
	return slices.Clone(registry)
}

// Evaluate checks every definition against the input, in registry order
func Evaluate(in Input) []Achievement {
	result := make([]Achievement, len(registry))
	for i, d := range registry {
		result[i] = Achievement{
			ID:          d.ID,
			Icon:        d.Icon,
			Name:        d.Name,
			Description: d.Description,
			Category:    d.Category,
			Earned:      d.Condition(&in),
		}
	}
	return result
}

// BuildInput derives the evaluation input for a player from the game list
func BuildInput(playerID model.PlayerID, games []model.Game) Input {
	wins := stats.PlayerWins(playerID, games)
	return Input{
		Stats:       stats.Compute(playerID, games),
		MaxStreak:   stats.Streaks(playerID, games).MaxStreak,
		Badges:      stats.BadgeCollection(wins),
		Wins:        wins,
		Progression: stats.Progression(playerID, games),
	}
}

// ForPlayer evaluates the registry against the player's full history
func ForPlayer(playerID model.PlayerID, games []model.Game) []Achievement {
	return Evaluate(BuildInput(playerID, games))
}

// Summary counts earned achievements
func Summary(achs []Achievement) (earned, total int) {
	for _, a := range achs {
		if a.Earned {
			earned++
		}
	}
	return earned, len(achs)
}

// winRateReached is true if the win rate ever met the threshold once the
// player had played enough games. Games appended in date order never take it
// away; a game dated before earlier ones rewrites the progression and can.
func winRateReached(in *Input, threshold, minGames int) bool {
	if in.Stats.GamesPlayed >= minGames && in.Stats.WinRate >= threshold {
		return true
	}
	return slices.ContainsFunc(in.Progression, func(s stats.Stats) bool {
		return s.GamesPlayed >= minGames && s.WinRate >= threshold
	})
}

func distinctGameTypes(in *Input) int {
	seen := make(map[model.GameType]bool)
	for _, g := range in.Wins {
		seen[g.GameType] = true
	}
	return len(seen)
}

func distinctPlaces(in *Input) int {
	seen := make(map[string]bool)
	for _, g := range in.Wins {
		if place := strings.TrimSpace(g.Place); place != "" {
			seen[place] = true
		}
	}
	return len(seen)
}

// winsWithAny counts wins carrying at least one of the badges
func winsWithAny(in *Input, badges ...string) int {
	n := 0
	for _, g := range in.Wins {
		if slices.ContainsFunc(badges, g.HasBadge) {
			n++
		}
	}
	return n
}
