package stats

import (
	"sort"
	"time"

	"github.com/cardnight/ledger/internal/dependencies/clock"
	"github.com/cardnight/ledger/internal/model"
)

// ParseDate parses a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(clock.DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

type dateKey struct {
	t     time.Time
	valid bool
}

// Unparsable dates are greater than every valid date
func (a dateKey) before(b dateKey) bool {
	if a.valid && b.valid {
		return a.t.Before(b.t)
	}
	return a.valid && !b.valid
}

// SortByDate returns a copy of the games ordered by calendar date.
// The sort is stable so games on the same date keep their input order.
func SortByDate(games []model.Game, ascending bool) []model.Game {
	type keyed struct {
		game model.Game
		key  dateKey
	}

	items := make([]keyed, len(games))
	for i, g := range games {
		t, ok := ParseDate(g.Date)
		items[i] = keyed{game: g, key: dateKey{t: t, valid: ok}}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return items[i].key.before(items[j].key)
		}
		return items[j].key.before(items[i].key)
	})

	result := make([]model.Game, len(items))
	for i, item := range items {
		result[i] = item.game
	}
	return result
}
