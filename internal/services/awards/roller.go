// Package awards selects the badges attached to a newly recorded win.
package awards

import (
	"strconv"
	"strings"

	"github.com/cardnight/ledger/internal/dependencies/random"
	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/catalog"
)

const (
	// Up to this many random badges are drawn per win
	maxRandomBadges = 3

	// Prior wins needed for a hat-trick
	hatTrickPriorWins = 2
)

// Hour ranges, start inclusive and end exclusive. They overlap at 05:xx.
const (
	nightOwlStart  = 0
	nightOwlEnd    = 6
	earlyBirdStart = 5
	earlyBirdEnd   = 8
)

// Roller draws badges for wins
type Roller struct {
	random random.Random
}

// NewRoller creates a Roller using the given randomness source
func NewRoller(random random.Random) *Roller {
	return &Roller{random: random}
}

// Roll picks the badges for a win by winnerID, where games is the history
// before this win. mood is accepted but does not gate any badge yet.
// timeOfDay is read as "H:MM" or "HH:MM"; a value without a colon, such as
// "5", carries no hour and adds no time-of-day badge.
// The result has no duplicates and every identifier is in the catalog.
func (r *Roller) Roll(winnerID model.PlayerID, games []model.Game, mood model.Mood, timeOfDay string) []string {
	priorWins := 0
	for i := range games {
		if games[i].WinnerID == winnerID {
			priorWins++
		}
	}

	var badges []string
	if priorWins == 0 {
		badges = append(badges, catalog.BadgeFirstWin)
	}
	badges = append(badges, r.draw()...)

	if hour, ok := parseHour(timeOfDay); ok {
		if hour >= nightOwlStart && hour < nightOwlEnd {
			badges = append(badges, catalog.BadgeNightOwl)
		}
		if hour >= earlyBirdStart && hour < earlyBirdEnd {
			badges = append(badges, catalog.BadgeEarlyBird)
		}
	}

	// Only the winner's own wins are counted, not whether they were consecutive
	if priorWins >= hatTrickPriorWins {
		badges = append(badges, catalog.BadgeHatTrick)
	}

	return dedupe(badges)
}

// draw shuffles the eligible badges and takes between 1 and maxRandomBadges
func (r *Roller) draw() []string {
	eligible := catalog.RandomEligible()
	k := 1 + r.random.Intn(maxRandomBadges)

	// Fisher-Yates
	for i := len(eligible) - 1; i > 0; i-- {
		j := r.random.Intn(i + 1)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}

	return eligible[:min(k, len(eligible))]
}

// parseHour reads the hour of an HH:MM time
func parseHour(timeOfDay string) (int, bool) {
	h, _, ok := strings.Cut(strings.TrimSpace(timeOfDay), ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

func dedupe(badges []string) []string {
	seen := make(map[string]bool, len(badges))
	result := make([]string, 0, len(badges))
	for _, b := range badges {
		if !seen[b] {
			seen[b] = true
			result = append(result, b)
		}
	}
	return result
}
