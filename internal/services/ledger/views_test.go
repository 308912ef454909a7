package ledger

import (
	"github.com/cardnight/ledger/internal/model"
)

func (s *ServiceSuite) TestProfile() {
	alice := s.createPlayer("alice", "Alice")
	bob := s.createPlayer("bob", "Bob")
	s.recordGame("g1", GameInput{WinnerID: alice, Date: "2024-01-01", Participants: []model.PlayerID{bob}})
	s.recordGame("g2", GameInput{WinnerID: bob, Date: "2024-01-02", Participants: []model.PlayerID{alice}})
	s.recordGame("g3", GameInput{WinnerID: alice, Date: "2024-01-03", Participants: []model.PlayerID{bob}, Time: "01:00"})

	profile, err := s.service.Profile(s.ctx, alice)
	s.Require().NoError(err)

	s.Equal("Alice", profile.Player.Name)
	s.Equal(2, profile.Stats.Wins)
	s.Equal(3, profile.Stats.GamesPlayed)
	s.Equal(67, profile.Stats.WinRate)
	s.Equal(1, profile.Streaks.CurrentStreak)
	s.Equal(1, profile.Streaks.MaxStreak)
	s.Equal("Apprenti Joueur", profile.Title)
	s.Require().NotNil(profile.NextTitle)
	s.Equal(3, profile.NextTitle.Min)

	s.Require().Len(profile.Wins, 2)
	s.Equal(model.GameID("g3"), profile.Wins[0].ID)

	counts := make(map[string]int)
	for _, b := range profile.Badges {
		s.False(b.Badge.Placeholder)
		counts[b.Badge.Value] = b.Count
	}
	s.Equal(1, counts["first-win"])
	s.Equal(1, counts["night-owl"])
	s.Equal(2, counts["flawless"])

	earned := make(map[string]bool)
	for _, a := range profile.Achievements {
		earned[a.ID] = a.Earned
	}
	s.True(earned["welcome"])
	s.True(earned["first-victory"])
	s.True(earned["night-owl"])
	s.False(earned["wins-5"])
}

func (s *ServiceSuite) TestProfileResolvesRetiredBadges() {
	alice := s.createPlayer("alice", "Alice")
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{
		ID: "old", WinnerID: alice, Date: "2020-01-01", Badges: []string{"retired-badge"},
	}))

	profile, err := s.service.Profile(s.ctx, alice)
	s.Require().NoError(err)

	s.Require().Len(profile.Badges, 1)
	s.True(profile.Badges[0].Badge.Placeholder)
	s.Equal("retired-badge", profile.Badges[0].Badge.Name)
}

func (s *ServiceSuite) TestProfileNotFound() {
	_, err := s.service.Profile(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestLeaderboardAndPodium() {
	alice := s.createPlayer("alice", "Alice")
	bob := s.createPlayer("bob", "Bob")
	carol := s.createPlayer("carol", "Carol")
	dave := s.createPlayer("dave", "Dave")
	s.recordGame("g1", GameInput{WinnerID: bob, Date: "2024-01-01"})
	s.recordGame("g2", GameInput{WinnerID: bob, Date: "2024-01-02"})
	s.recordGame("g3", GameInput{WinnerID: carol, Date: "2024-01-03"})

	standings, err := s.service.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 4)
	s.Equal(bob, standings[0].Player.ID)
	s.Equal(carol, standings[1].Player.ID)
	s.Equal(alice, standings[2].Player.ID)
	s.Equal(dave, standings[3].Player.ID)

	podium, err := s.service.Podium(s.ctx)
	s.Require().NoError(err)
	s.Len(podium, 3)
}

func (s *ServiceSuite) TestOverviewAndPlaces() {
	alice := s.createPlayer("alice", "Alice")
	bob := s.createPlayer("bob", "Bob")
	s.recordGame("g1", GameInput{WinnerID: bob, Date: "2024-01-01", Place: "Chez Bob"})
	s.recordGame("g2", GameInput{WinnerID: alice, Date: "2024-01-02", Place: "Le Bar"})
	s.recordGame("g3", GameInput{WinnerID: alice, Date: "2024-01-03", Place: "Le Bar"})

	overview, err := s.service.Overview(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, overview.TotalGames)
	s.Require().NotNil(overview.TopPlayerID)
	s.Equal(alice, *overview.TopPlayerID)
	s.Equal(2, overview.CurrentStreak.Streak)
	s.Equal("Le Bar", overview.FavoritePlace)

	places, err := s.service.Places(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Chez Bob", "Le Bar"}, places)
}
