package stats

import (
	"sort"
	"strings"

	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/titles"
)

// podiumSize is the number of places shown on the podium
const podiumSize = 3

// Standing is a player's row in the leaderboard
type Standing struct {
	Rank    int
	Player  model.Player
	Stats   Stats
	Streaks StreakStats
	Title   string
}

// Leaderboard ranks players by wins, most first. Players on equal wins keep
// their input order.
func Leaderboard(players []model.Player, games []model.Game) []Standing {
	standings := make([]Standing, 0, len(players))
	for _, p := range players {
		s := Compute(p.ID, games)
		standings = append(standings, Standing{
			Player:  p,
			Stats:   s,
			Streaks: Streaks(p.ID, games),
			Title:   titles.TitleFor(s.Wins),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Stats.Wins > standings[j].Stats.Wins
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// Podium returns the top three of the leaderboard
func Podium(players []model.Player, games []model.Game) []Standing {
	standings := Leaderboard(players, games)
	if len(standings) > podiumSize {
		standings = standings[:podiumSize]
	}
	return standings
}

// PlaceCount is the number of games played at a place
type PlaceCount struct {
	Place string
	Games int
}

// Overview summarizes the whole group's history
type Overview struct {
	TotalGames    int
	TopPlayerID   *model.PlayerID // nil when nobody has won yet
	TopPlayerWins int
	CurrentStreak GlobalStreak
	FavoritePlace string // Empty when no game has a place
	PlaceCounts   []PlaceCount
}

// ComputeOverview builds the group summary
func ComputeOverview(players []model.Player, games []model.Game) Overview {
	o := Overview{
		TotalGames:    len(games),
		CurrentStreak: GlobalCurrentStreak(games),
		PlaceCounts:   placeCounts(games),
	}

	for _, p := range players {
		wins := Compute(p.ID, games).Wins
		if wins > o.TopPlayerWins {
			id := p.ID
			o.TopPlayerID = &id
			o.TopPlayerWins = wins
		}
	}

	if len(o.PlaceCounts) > 0 {
		o.FavoritePlace = o.PlaceCounts[0].Place
	}
	return o
}

// Most played first, ties in first-seen order
func placeCounts(games []model.Game) []PlaceCount {
	var counts []PlaceCount
	index := make(map[string]int)
	for _, g := range games {
		place := strings.TrimSpace(g.Place)
		if place == "" {
			continue
		}
		i, ok := index[place]
		if !ok {
			i = len(counts)
			index[place] = i
			counts = append(counts, PlaceCount{Place: place})
		}
		counts[i].Games++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Games > counts[j].Games
	})
	return counts
}

// Places returns the distinct non-empty places in first-seen order
func Places(games []model.Game) []string {
	places := []string{}
	seen := make(map[string]bool)
	for _, g := range games {
		place := strings.TrimSpace(g.Place)
		if place == "" || seen[place] {
			continue
		}
		seen[place] = true
		places = append(places, place)
	}
	return places
}
