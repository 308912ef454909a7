package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case []Standing:
		o.printStandings(v)
	case Overview:
		o.printOverview(v)
	case Profile:
		o.printProfile(v)
	case Badge:
		o.printBadge(v)
	case []Badge:
		o.printBadges(v)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		o.printJSON(data)
	}
}

// Aggregates mirrors the per-player counters kept by the server
type Aggregates struct {
	Wins          int `json:"wins"`
	CurrentStreak int `json:"current_streak"`
	MaxStreak     int `json:"max_streak"`
}

// Player response type
type Player struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Emoji       string     `json:"emoji"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Aggregates  Aggregates `json:"aggregates"`
}

// Badge response type
type Badge struct {
	Value       string `json:"value"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// Game response type
type Game struct {
	ID            string    `json:"id"`
	WinnerID      string    `json:"winner_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time,omitempty"`
	Place         string    `json:"place,omitempty"`
	GameType      string    `json:"game_type"`
	GameTypeLabel string    `json:"game_type_label"`
	Mood          string    `json:"mood"`
	MoodEmoji     string    `json:"mood_emoji"`
	MoodText      string    `json:"mood_text"`
	Participants  []string  `json:"participants"`
	Badges        []Badge   `json:"badges"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Stats response type
type Stats struct {
	Wins        int `json:"wins"`
	GamesPlayed int `json:"games_played"`
	WinRate     int `json:"win_rate"`
}

// Streaks response type
type Streaks struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Standing is one leaderboard row
type Standing struct {
	Rank    int     `json:"rank"`
	Player  Player  `json:"player"`
	Stats   Stats   `json:"stats"`
	Streaks Streaks `json:"streaks"`
	Title   string  `json:"title"`
}

// CurrentStreak names who holds the running streak
type CurrentStreak struct {
	PlayerID *string `json:"player_id"`
	Streak   int     `json:"streak"`
}

// PlaceCount response type
type PlaceCount struct {
	Place string `json:"place"`
	Games int    `json:"games"`
}

// Overview response type
type Overview struct {
	TotalGames    int           `json:"total_games"`
	TopPlayerID   *string       `json:"top_player_id"`
	TopPlayerWins int           `json:"top_player_wins"`
	CurrentStreak CurrentStreak `json:"current_streak"`
	FavoritePlace string        `json:"favorite_place,omitempty"`
	Places        []PlaceCount  `json:"places"`
}

// Title response type
type Title struct {
	Min   int    `json:"min"`
	Title string `json:"title"`
}

// Achievement response type
type Achievement struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Earned      bool   `json:"earned"`
}

// BadgeCount response type
type BadgeCount struct {
	Badge Badge `json:"badge"`
	Count int   `json:"count"`
}

// Profile response type
type Profile struct {
	Player             Player        `json:"player"`
	Stats              Stats         `json:"stats"`
	Streaks            Streaks       `json:"streaks"`
	Title              string        `json:"title"`
	NextTitle          *Title        `json:"next_title"`
	Achievements       []Achievement `json:"achievements"`
	AchievementsEarned int           `json:"achievements_earned"`
	AchievementsTotal  int           `json:"achievements_total"`
	Badges             []BadgeCount  `json:"badges"`
	Wins               []Game        `json:"wins"`
}

// RollResult response type
type RollResult struct {
	Badges []Badge `json:"badges"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Fprintf(o.w, "Player: %s %s (%s)\n", p.Emoji, p.Name, p.ID)
	if p.Description != "" {
		fmt.Fprintf(o.w, "Description: %s\n", p.Description)
	}
	fmt.Fprintf(o.w, "Wins: %d\n", p.Aggregates.Wins)
	fmt.Fprintf(o.w, "Streak: %d (best %d)\n", p.Aggregates.CurrentStreak, p.Aggregates.MaxStreak)
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Fprintln(o.w, "No players")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tWINS\tSTREAK")
	for _, p := range players {
		fmt.Fprintf(tw, "%s\t%s %s\t%d\t%d\n", p.ID, p.Emoji, p.Name, p.Aggregates.Wins, p.Aggregates.CurrentStreak)
	}
	_ = tw.Flush()
}

func (o *Output) printGame(g Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Winner: %s\n", g.WinnerID)
	when := g.Date
	if g.Time != "" {
		when += " " + g.Time
	}
	fmt.Fprintf(o.w, "When: %s\n", when)
	if g.Place != "" {
		fmt.Fprintf(o.w, "Place: %s\n", g.Place)
	}
	fmt.Fprintf(o.w, "Type: %s\n", g.GameTypeLabel)
	fmt.Fprintf(o.w, "Mood: %s %s\n", g.MoodEmoji, g.MoodText)
	if len(g.Participants) > 0 {
		fmt.Fprintf(o.w, "Participants: %s\n", strings.Join(g.Participants, ", "))
	}
	if len(g.Badges) > 0 {
		fmt.Fprintln(o.w, "Badges:")
		for _, b := range g.Badges {
			fmt.Fprintf(o.w, "  %s %s\n", b.Icon, b.Name)
		}
	}
	if g.Comment != "" {
		fmt.Fprintf(o.w, "Comment: %s\n", g.Comment)
	}
}

func (o *Output) printGames(games []Game) {
	if len(games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tWINNER\tTYPE\tPLACE\tBADGES")
	for _, g := range games {
		icons := make([]string, len(g.Badges))
		for i, b := range g.Badges {
			icons[i] = b.Icon
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", g.ID, g.Date, g.WinnerID, g.GameTypeLabel, g.Place, strings.Join(icons, ""))
	}
	_ = tw.Flush()
}

func (o *Output) printStandings(standings []Standing) {
	if len(standings) == 0 {
		fmt.Fprintln(o.w, "No players")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPLAYER\tWINS\tRATE\tSTREAK\tTITLE")
	for _, s := range standings {
		fmt.Fprintf(tw, "%d\t%s %s\t%d\t%d%%\t%d\t%s\n",
			s.Rank, s.Player.Emoji, s.Player.Name, s.Stats.Wins, s.Stats.WinRate, s.Streaks.Current, s.Title)
	}
	_ = tw.Flush()
}

func (o *Output) printOverview(ov Overview) {
	fmt.Fprintf(o.w, "Games: %d\n", ov.TotalGames)
	if ov.TopPlayerID != nil {
		fmt.Fprintf(o.w, "Top player: %s (%d wins)\n", *ov.TopPlayerID, ov.TopPlayerWins)
	}
	if ov.CurrentStreak.PlayerID != nil {
		fmt.Fprintf(o.w, "Current streak: %s (%d)\n", *ov.CurrentStreak.PlayerID, ov.CurrentStreak.Streak)
	}
	if ov.FavoritePlace != "" {
		fmt.Fprintf(o.w, "Favorite place: %s\n", ov.FavoritePlace)
	}
}

func (o *Output) printProfile(p Profile) {
	o.printPlayer(p.Player)
	fmt.Fprintf(o.w, "Title: %s\n", p.Title)
	if p.NextTitle != nil {
		fmt.Fprintf(o.w, "Next title: %s at %d wins\n", p.NextTitle.Title, p.NextTitle.Min)
	}
	fmt.Fprintf(o.w, "Games played: %d (win rate %d%%)\n", p.Stats.GamesPlayed, p.Stats.WinRate)
	fmt.Fprintf(o.w, "Achievements: %d/%d\n", p.AchievementsEarned, p.AchievementsTotal)
	for _, a := range p.Achievements {
		if a.Earned {
			fmt.Fprintf(o.w, "  %s %s\n", a.Icon, a.Name)
		}
	}
	if len(p.Badges) > 0 {
		fmt.Fprintln(o.w, "Badges:")
		for _, bc := range p.Badges {
			fmt.Fprintf(o.w, "  %s %s x%d\n", bc.Badge.Icon, bc.Badge.Name, bc.Count)
		}
	}
}

func (o *Output) printBadge(b Badge) {
	fmt.Fprintf(o.w, "%s %s (%s)\n", b.Icon, b.Name, b.Value)
	fmt.Fprintf(o.w, "Category: %s\n", b.Category)
	fmt.Fprintf(o.w, "%s\n", b.Description)
}

func (o *Output) printBadges(badges []Badge) {
	if len(badges) == 0 {
		fmt.Fprintln(o.w, "No badges")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	for _, b := range badges {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.Icon, b.Value, b.Name, b.Category)
	}
	_ = tw.Flush()
}
