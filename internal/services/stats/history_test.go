package stats

import (
	"github.com/cardnight/ledger/internal/model"
)

func withBadges(g model.Game, badges ...string) model.Game {
	g.Badges = badges
	return g
}

func (s *StatsSuite) TestFilterGames() {
	games := []model.Game{
		withPlace(game("g1", alice, "2024-01-01", bob), "Le Bar"),
		withPlace(game("g2", bob, "2024-01-02", alice), "Le Bar"),
		withPlace(game("g3", alice, "2024-01-03", bob), "Chez Bob"),
		withPlace(game("g4", alice, "2024-01-04", bob), "Le Bar"),
	}

	s.Equal([]model.GameID{"g4", "g3", "g2", "g1"}, gameIDs(FilterGames(games, Filter{})))
	s.Equal([]model.GameID{"g4", "g3", "g1"}, gameIDs(FilterGames(games, Filter{WinnerID: alice})))
	s.Equal([]model.GameID{"g4", "g2", "g1"}, gameIDs(FilterGames(games, Filter{Place: "Le Bar"})))
	s.Equal([]model.GameID{"g4", "g1"}, gameIDs(FilterGames(games, Filter{WinnerID: alice, Place: "Le Bar"})))
	s.Empty(FilterGames(games, Filter{WinnerID: carol}))
}

func (s *StatsSuite) TestPlayerWins() {
	games := []model.Game{
		game("g1", alice, "2024-01-01", bob),
		game("g2", bob, "2024-01-02", alice),
		game("g3", alice, "2024-01-03", bob),
	}

	s.Equal([]model.GameID{"g3", "g1"}, gameIDs(PlayerWins(alice, games)))
}

func (s *StatsSuite) TestBadgeCollection() {
	games := []model.Game{
		withBadges(game("g1", alice, "2024-01-01"), "first-win", "clutch"),
		withBadges(game("g2", alice, "2024-01-02"), "clutch", "miracle", "miracle"),
		game("g3", alice, "2024-01-03"),
	}

	s.Equal([]string{"first-win", "clutch", "miracle"}, BadgeCollection(games))
	s.Equal(map[string]int{"first-win": 1, "clutch": 2, "miracle": 1}, BadgeCounts(games))
}

func (s *StatsSuite) TestBadgeCollectionEmpty() {
	s.Equal([]string{}, BadgeCollection(nil))
	s.Empty(BadgeCounts(nil))
}
