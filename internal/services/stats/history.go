package stats

import (
	"strings"

	"github.com/cardnight/ledger/internal/model"
)

// Filter narrows the game history. Zero values match every game.
type Filter struct {
	WinnerID model.PlayerID
	Place    string
}

func (f Filter) matches(g *model.Game) bool {
	if f.WinnerID != "" && g.WinnerID != f.WinnerID {
		return false
	}
	if f.Place != "" && strings.TrimSpace(g.Place) != strings.TrimSpace(f.Place) {
		return false
	}
	return true
}

// FilterGames returns the matching games, most recent first
func FilterGames(games []model.Game, f Filter) []model.Game {
	result := []model.Game{}
	for _, g := range SortByDate(games, false) {
		if f.matches(&g) {
			result = append(result, g)
		}
	}
	return result
}

// PlayerWins returns the games won by the player, most recent first
func PlayerWins(playerID model.PlayerID, games []model.Game) []model.Game {
	return FilterGames(games, Filter{WinnerID: playerID})
}

// BadgeCollection returns the distinct badges across the games in first-seen order
func BadgeCollection(games []model.Game) []string {
	badges := []string{}
	seen := make(map[string]bool)
	for _, g := range games {
		for _, b := range g.Badges {
			if !seen[b] {
				seen[b] = true
				badges = append(badges, b)
			}
		}
	}
	return badges
}

// BadgeCounts returns how many of the games carry each badge.
// A badge repeated on one game counts once.
func BadgeCounts(games []model.Game) map[string]int {
	counts := make(map[string]int)
	for _, g := range games {
		seen := make(map[string]bool, len(g.Badges))
		for _, b := range g.Badges {
			if !seen[b] {
				seen[b] = true
				counts[b]++
			}
		}
	}
	return counts
}
