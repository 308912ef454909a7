package stats

import (
	"github.com/cardnight/ledger/internal/model"
)

func players(ids ...model.PlayerID) []model.Player {
	result := make([]model.Player, len(ids))
	for i, id := range ids {
		result[i] = model.Player{ID: id, Name: string(id)}
	}
	return result
}

func (s *StatsSuite) TestLeaderboard() {
	games := []model.Game{
		game("g1", bob, "2024-01-01", alice),
		game("g2", carol, "2024-01-02", alice),
		game("g3", carol, "2024-01-03", bob),
	}

	standings := Leaderboard(players(alice, bob, carol), games)

	s.Require().Len(standings, 3)
	s.Equal(carol, standings[0].Player.ID)
	s.Equal(1, standings[0].Rank)
	s.Equal(2, standings[0].Stats.Wins)
	s.Equal(2, standings[0].Streaks.MaxStreak)
	s.Equal("Apprenti Joueur", standings[0].Title)

	s.Equal(bob, standings[1].Player.ID)
	s.Equal(2, standings[1].Rank)

	s.Equal(alice, standings[2].Player.ID)
	s.Equal(3, standings[2].Rank)
	s.Equal("Novice des Cartes", standings[2].Title)
	s.Equal(Stats{Wins: 0, GamesPlayed: 2, WinRate: 0}, standings[2].Stats)
}

func (s *StatsSuite) TestLeaderboardTiesKeepInputOrder() {
	games := []model.Game{
		game("g1", carol, "2024-01-01", alice),
		game("g2", alice, "2024-01-02", carol),
	}

	standings := Leaderboard(players(alice, bob, carol), games)

	s.Equal(alice, standings[0].Player.ID)
	s.Equal(carol, standings[1].Player.ID)
	s.Equal(bob, standings[2].Player.ID)
}

func (s *StatsSuite) TestPodium() {
	games := []model.Game{game("g1", "dave", "2024-01-01", alice)}

	podium := Podium(players(alice, bob, carol, "dave"), games)

	s.Require().Len(podium, 3)
	s.Equal(model.PlayerID("dave"), podium[0].Player.ID)

	s.Len(Podium(players(alice), games), 1)
	s.Empty(Podium(nil, games))
}

func (s *StatsSuite) TestOverview() {
	games := []model.Game{
		withPlace(game("g1", bob, "2024-01-01", alice), "Chez Bob"),
		withPlace(game("g2", alice, "2024-01-02", bob), "Le Bar"),
		withPlace(game("g3", alice, "2024-01-03", bob), "Le Bar"),
		game("g4", alice, "2024-01-04", bob),
	}

	o := ComputeOverview(players(alice, bob), games)

	s.Equal(4, o.TotalGames)
	s.Require().NotNil(o.TopPlayerID)
	s.Equal(alice, *o.TopPlayerID)
	s.Equal(3, o.TopPlayerWins)
	s.Require().NotNil(o.CurrentStreak.PlayerID)
	s.Equal(alice, *o.CurrentStreak.PlayerID)
	s.Equal(3, o.CurrentStreak.Streak)
	s.Equal("Le Bar", o.FavoritePlace)
	s.Equal([]PlaceCount{{"Le Bar", 2}, {"Chez Bob", 1}}, o.PlaceCounts)
}

func (s *StatsSuite) TestOverviewEmpty() {
	o := ComputeOverview(players(alice), nil)

	s.Equal(0, o.TotalGames)
	s.Nil(o.TopPlayerID)
	s.Nil(o.CurrentStreak.PlayerID)
	s.Empty(o.FavoritePlace)
}

func (s *StatsSuite) TestPlaces() {
	games := []model.Game{
		withPlace(game("g1", bob, "2024-01-01"), "Le Bar"),
		withPlace(game("g2", bob, "2024-01-02"), ""),
		withPlace(game("g3", bob, "2024-01-03"), "Chez Bob"),
		withPlace(game("g4", bob, "2024-01-04"), " Le Bar "),
	}

	s.Equal([]string{"Le Bar", "Chez Bob"}, Places(games))
	s.Equal([]string{}, Places(nil))
}

func withPlace(g model.Game, place string) model.Game {
	g.Place = place
	return g
}
