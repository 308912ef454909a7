package awards

import (
	"slices"
	"testing"

	"github.com/cardnight/ledger/internal/dependencies/mocks"
	"github.com/cardnight/ledger/internal/dependencies/random"
	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/catalog"
	"github.com/stretchr/testify/suite"
)

const (
	alice = model.PlayerID("alice")
	bob   = model.PlayerID("bob")
)

type RollerSuite struct {
	suite.Suite
	random *mocks.MockRandom
	roller *Roller
}

func TestRollerSuite(t *testing.T) {
	suite.Run(t, new(RollerSuite))
}

func (s *RollerSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.roller = NewRoller(s.random)
}

func win(id string, winner model.PlayerID, date string) model.Game {
	return model.Game{ID: model.GameID(id), WinnerID: winner, Date: date}
}

func (s *RollerSuite) TestFirstWinAtNight() {
	badges := s.roller.Roll(alice, []model.Game{}, model.MoodEpic, "02:30")

	s.Contains(badges, catalog.BadgeFirstWin)
	s.Contains(badges, catalog.BadgeNightOwl)
	s.NotContains(badges, catalog.BadgeEarlyBird)
}

func (s *RollerSuite) TestFirstWinAtNightWithAnySeed() {
	for seed := uint64(0); seed < 50; seed++ {
		roller := NewRoller(random.NewSeeded(seed))

		badges := roller.Roll(alice, nil, model.MoodEpic, "02:30")

		s.Contains(badges, catalog.BadgeFirstWin, "seed %d", seed)
		s.Contains(badges, catalog.BadgeNightOwl, "seed %d", seed)
	}
}

func (s *RollerSuite) TestDeterministicWithQueuedRandom() {
	// Zero draws: one badge, and the shuffle brings the second eligible badge to the front
	badges := s.roller.Roll(alice, nil, model.MoodChill, "")

	s.Equal([]string{catalog.BadgeFirstWin, catalog.BadgeFlawless}, badges)
}

func (s *RollerSuite) TestDrawCountFollowsRandom() {
	s.random.QueueIntn(2)

	badges := s.roller.Roll(alice, []model.Game{win("g1", alice, "2024-01-01")}, model.MoodEpic, "")

	s.Len(badges, 3)
	s.NotContains(badges, catalog.BadgeFirstWin)
	for _, b := range badges {
		s.False(catalog.IsContextual(b), b)
	}
}

func (s *RollerSuite) TestSameSeedSameResult() {
	games := []model.Game{win("g1", bob, "2024-01-01")}

	first := NewRoller(random.NewSeeded(42)).Roll(alice, games, model.MoodEpic, "21:00")
	second := NewRoller(random.NewSeeded(42)).Roll(alice, games, model.MoodEpic, "21:00")

	s.Equal(first, second)
}

func (s *RollerSuite) TestEveryBadgeResolves() {
	games := []model.Game{
		win("g1", alice, "2024-01-01"),
		win("g2", alice, "2024-01-02"),
	}

	for seed := uint64(0); seed < 200; seed++ {
		roller := NewRoller(random.NewSeeded(seed))
		for _, t := range []string{"", "05:30", "23:59"} {
			badges := roller.Roll(alice, games, model.MoodEpic, t)

			s.NotEmpty(badges)
			seen := make(map[string]bool)
			for _, b := range badges {
				def, ok := catalog.Lookup(b)
				s.True(ok, "badge %s not in catalog", b)
				s.False(def.Placeholder)
				s.False(seen[b], "duplicate badge %s", b)
				seen[b] = true
			}
		}
	}
}

func (s *RollerSuite) TestRandomDrawIsBetweenOneAndThree() {
	for seed := uint64(0); seed < 200; seed++ {
		badges := NewRoller(random.NewSeeded(seed)).Roll(alice, []model.Game{win("g1", alice, "2024-01-01")}, model.MoodEpic, "")

		s.GreaterOrEqual(len(badges), 1)
		s.LessOrEqual(len(badges), 3)
	}
}

func (s *RollerSuite) TestHatTrickWithTwoPriorWins() {
	games := []model.Game{
		win("g1", alice, "2024-01-01"),
		win("g2", bob, "2024-01-02"),
		win("g3", alice, "2024-01-03"),
	}

	badges := s.roller.Roll(alice, games, model.MoodEpic, "")

	s.Contains(badges, catalog.BadgeHatTrick)
	s.NotContains(badges, catalog.BadgeFirstWin)
}

func (s *RollerSuite) TestNoHatTrickWithOnePriorWin() {
	games := []model.Game{
		win("g1", alice, "2024-01-01"),
		win("g2", bob, "2024-01-02"),
	}

	badges := s.roller.Roll(alice, games, model.MoodEpic, "")

	s.NotContains(badges, catalog.BadgeHatTrick)
	s.NotContains(badges, catalog.BadgeFirstWin)
}

func (s *RollerSuite) TestOtherPlayersWinsDoNotCount() {
	games := []model.Game{
		win("g1", bob, "2024-01-01"),
		win("g2", bob, "2024-01-02"),
	}

	badges := s.roller.Roll(alice, games, model.MoodEpic, "")

	s.Contains(badges, catalog.BadgeFirstWin)
	s.NotContains(badges, catalog.BadgeHatTrick)
}

func (s *RollerSuite) TestNightOwlAndEarlyBirdOverlap() {
	badges := s.roller.Roll(alice, nil, model.MoodEpic, "05:30")

	s.Contains(badges, catalog.BadgeNightOwl)
	s.Contains(badges, catalog.BadgeEarlyBird)
}

func (s *RollerSuite) TestTimeOfDayRanges() {
	tests := []struct {
		time      string
		nightOwl  bool
		earlyBird bool
	}{
		{"00:00", true, false},
		{"04:59", true, false},
		{"05:00", true, true},
		{"06:00", false, true},
		{"7:45", false, true},
		{"08:00", false, false},
		{"23:30", false, false},
		{"", false, false},
		{"late", false, false},
		{"25:00", false, false},
		{"-1:00", false, false},
		{"5", false, false},
	}

	for _, tt := range tests {
		s.Run(tt.time, func() {
			badges := NewRoller(mocks.NewMockRandom()).Roll(alice, nil, model.MoodEpic, tt.time)

			s.Equal(tt.nightOwl, slices.Contains(badges, catalog.BadgeNightOwl))
			s.Equal(tt.earlyBird, slices.Contains(badges, catalog.BadgeEarlyBird))
		})
	}
}

func (s *RollerSuite) TestMoodDoesNotChangeResult() {
	first := NewRoller(random.NewSeeded(7)).Roll(alice, nil, model.MoodEpic, "")
	second := NewRoller(random.NewSeeded(7)).Roll(alice, nil, model.MoodChaos, "")

	s.Equal(first, second)
}

func (s *RollerSuite) TestNeverDrawsContextualBadges() {
	for seed := uint64(0); seed < 100; seed++ {
		badges := NewRoller(random.NewSeeded(seed)).Roll(alice, []model.Game{win("g1", alice, "2024-01-01")}, model.MoodEpic, "")
		for _, b := range badges {
			s.False(catalog.IsContextual(b), "seed %d drew %s", seed, b)
		}
	}
}

func (s *RollerSuite) TestDedupe() {
	s.Equal([]string{"a", "b", "c"}, dedupe([]string{"a", "b", "a", "c", "b"}))
}
