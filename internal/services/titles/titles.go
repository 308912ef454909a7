// Package titles maps cumulative win counts to rank titles.
package titles

import "slices"

// Threshold is a rung of the title ladder
type Threshold struct {
	Min   int    `json:"min"`
	Title string `json:"title"`
}

// Ascending by Min. The first rung must start at 0.
var ladder = []Threshold{
	{0, "Novice des Cartes"},
	{1, "Apprenti Joueur"},
	{3, "Joueur Régulier"},
	{5, "As des Cartes"},
	{10, "Maître du Jeu"},
	{20, "Grand Champion"},
	{50, "Légende Vivante"},
	{100, "Dieu des Cartes"},
}

// Ladder returns the thresholds in ascending order
func Ladder() []Threshold {
	return slices.Clone(ladder)
}

// TitleFor returns the title of the highest threshold reached.
// Negative counts get the lowest title.
func TitleFor(wins int) string {
	title := ladder[0].Title
	for _, t := range ladder {
		if t.Min > wins {
			break
		}
		title = t.Title
	}
	return title
}

// Next returns the next threshold above the current win count.
// ok is false once the top of the ladder is reached.
func Next(wins int) (next Threshold, ok bool) {
	for _, t := range ladder {
		if t.Min > wins {
			return t, true
		}
	}
	return Threshold{}, false
}
