// Package stats derives player statistics from the game list.
//
// Every function works on a snapshot passed by the caller and has no side
// effects, so results can be recomputed at any time.
package stats

import (
	"math"

	"github.com/cardnight/ledger/internal/model"
)

// Stats are a player's win and participation counts
type Stats struct {
	Wins        int
	GamesPlayed int
	WinRate     int // Percentage, rounded
}

// StreakStats are a player's winning streaks
type StreakStats struct {
	CurrentStreak int // Streak still running at the chronologically last game
	MaxStreak     int
}

// GlobalStreak is the run of the most recent winner across all games
type GlobalStreak struct {
	PlayerID *model.PlayerID // nil when there are no games
	Streak   int
}

// Compute counts the games a player won and took part in
func Compute(playerID model.PlayerID, games []model.Game) Stats {
	var s Stats
	for i := range games {
		if games[i].WinnerID == playerID {
			s.Wins++
		}
		if games[i].Involves(playerID) {
			s.GamesPlayed++
		}
	}
	s.WinRate = winRate(s.Wins, s.GamesPlayed)
	return s
}

func winRate(wins, played int) int {
	if played == 0 {
		return 0
	}
	return int(math.Round(100 * float64(wins) / float64(played)))
}

// Streaks walks every game in date order. Any game the player did not win
// resets the running streak, whether or not they took part.
func Streaks(playerID model.PlayerID, games []model.Game) StreakStats {
	var s StreakStats
	for _, g := range SortByDate(games, true) {
		if g.WinnerID != playerID {
			s.CurrentStreak = 0
			continue
		}
		s.CurrentStreak++
		s.MaxStreak = max(s.MaxStreak, s.CurrentStreak)
	}
	return s
}

// GlobalCurrentStreak counts how many of the most recent games were won by
// the winner of the latest game
func GlobalCurrentStreak(games []model.Game) GlobalStreak {
	if len(games) == 0 {
		return GlobalStreak{}
	}

	sorted := SortByDate(games, false)
	winner := sorted[0].WinnerID
	streak := 0
	for _, g := range sorted {
		if g.WinnerID != winner {
			break
		}
		streak++
	}
	return GlobalStreak{PlayerID: &winner, Streak: streak}
}

// Aggregates computes the cached projection stored on a player
func Aggregates(playerID model.PlayerID, games []model.Game) model.Aggregates {
	streaks := Streaks(playerID, games)
	return model.Aggregates{
		Wins:          Compute(playerID, games).Wins,
		CurrentStreak: streaks.CurrentStreak,
		MaxStreak:     streaks.MaxStreak,
	}
}

// Progression returns the player's running stats after each game they took
// part in, in date order
func Progression(playerID model.PlayerID, games []model.Game) []Stats {
	var (
		result  []Stats
		current Stats
	)
	for _, g := range SortByDate(games, true) {
		if !g.Involves(playerID) {
			continue
		}
		current.GamesPlayed++
		if g.WinnerID == playerID {
			current.Wins++
		}
		current.WinRate = winRate(current.Wins, current.GamesPlayed)
		result = append(result, current)
	}
	return result
}
