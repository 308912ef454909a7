package response

import (
	"time"

	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/achievements"
	"github.com/cardnight/ledger/internal/services/catalog"
	"github.com/cardnight/ledger/internal/services/ledger"
	"github.com/cardnight/ledger/internal/services/stats"
	"github.com/cardnight/ledger/internal/services/titles"
)

// Aggregates are a player's cached counters
type Aggregates struct {
	Wins          int `json:"wins"`
	CurrentStreak int `json:"current_streak"`
	MaxStreak     int `json:"max_streak"`
}

// Player represents a player in API responses
type Player struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Emoji       string     `json:"emoji"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Aggregates  Aggregates `json:"aggregates"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		Name:        p.Name,
		Emoji:       p.Emoji,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		Aggregates: Aggregates{
			Wins:          p.Aggregates.Wins,
			CurrentStreak: p.Aggregates.CurrentStreak,
			MaxStreak:     p.Aggregates.MaxStreak,
		},
	}
}

// PlayersFromModel converts a player list
func PlayersFromModel(players []model.Player) []Player {
	result := make([]Player, len(players))
	for i := range players {
		result[i] = PlayerFromModel(&players[i])
	}
	return result
}

// Badge is a badge definition
type Badge struct {
	Value       string `json:"value"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// BadgeFromCatalog converts a catalog.BadgeDefinition
func BadgeFromCatalog(b catalog.BadgeDefinition) Badge {
	return Badge{
		Value:       b.Value,
		Icon:        b.Icon,
		Name:        b.Name,
		Category:    b.Category,
		Description: b.Description,
		Placeholder: b.Placeholder,
	}
}

// BadgesFromCatalog converts definitions
func BadgesFromCatalog(defs []catalog.BadgeDefinition) []Badge {
	result := make([]Badge, len(defs))
	for i, d := range defs {
		result[i] = BadgeFromCatalog(d)
	}
	return result
}

// ResolveBadges looks up badge identifiers, using a placeholder for retired ones
func ResolveBadges(values []string) []Badge {
	result := make([]Badge, len(values))
	for i, v := range values {
		result[i] = BadgeFromCatalog(catalog.Resolve(v))
	}
	return result
}

// Game represents a recorded win
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

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	participants := make([]string, len(g.Participants))
	for i, p := range g.Participants {
		participants[i] = string(p)
	}
	return Game{
		ID:            string(g.ID),
		WinnerID:      string(g.WinnerID),
		Date:          g.Date,
		Time:          g.Time,
		Place:         g.Place,
		GameType:      string(g.GameType),
		GameTypeLabel: catalog.GameTypeLabel(g.GameType),
		Mood:          string(g.Mood),
		MoodEmoji:     catalog.MoodEmoji(g.Mood),
		MoodText:      catalog.MoodText(g.Mood),
		Participants:  participants,
		Badges:        ResolveBadges(g.Badges),
		Comment:       g.Comment,
		CreatedAt:     g.CreatedAt,
	}
}

// GamesFromModel converts a game list
func GamesFromModel(games []model.Game) []Game {
	result := make([]Game, len(games))
	for i := range games {
		result[i] = GameFromModel(&games[i])
	}
	return result
}

// Stats are a player's win counters
type Stats struct {
	Wins        int `json:"wins"`
	GamesPlayed int `json:"games_played"`
	WinRate     int `json:"win_rate"`
}

// Streaks are a player's winning runs
type Streaks struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Standing is a leaderboard row
type Standing struct {
	Rank    int     `json:"rank"`
	Player  Player  `json:"player"`
	Stats   Stats   `json:"stats"`
	Streaks Streaks `json:"streaks"`
	Title   string  `json:"title"`
}

// StandingsFromStats converts leaderboard rows
func StandingsFromStats(standings []stats.Standing) []Standing {
	result := make([]Standing, len(standings))
	for i, s := range standings {
		result[i] = Standing{
			Rank:    s.Rank,
			Player:  PlayerFromModel(&s.Player),
			Stats:   statsFrom(s.Stats),
			Streaks: Streaks{Current: s.Streaks.CurrentStreak, Max: s.Streaks.MaxStreak},
			Title:   s.Title,
		}
	}
	return result
}

func statsFrom(s stats.Stats) Stats {
	return Stats{Wins: s.Wins, GamesPlayed: s.GamesPlayed, WinRate: s.WinRate}
}

// CurrentStreak is the group-wide run of consecutive wins
type CurrentStreak struct {
	PlayerID *string `json:"player_id"`
	Streak   int     `json:"streak"`
}

// PlaceCount is the number of games played at a place
type PlaceCount struct {
	Place string `json:"place"`
	Games int    `json:"games"`
}

// Overview summarizes the whole group
type Overview struct {
	TotalGames    int           `json:"total_games"`
	TopPlayerID   *string       `json:"top_player_id"`
	TopPlayerWins int           `json:"top_player_wins"`
	CurrentStreak CurrentStreak `json:"current_streak"`
	FavoritePlace string        `json:"favorite_place,omitempty"`
	Places        []PlaceCount  `json:"places"`
}

// OverviewFromStats converts a stats.Overview
func OverviewFromStats(o stats.Overview) Overview {
	places := make([]PlaceCount, len(o.PlaceCounts))
	for i, pc := range o.PlaceCounts {
		places[i] = PlaceCount{Place: pc.Place, Games: pc.Games}
	}
	return Overview{
		TotalGames:    o.TotalGames,
		TopPlayerID:   idPtr(o.TopPlayerID),
		TopPlayerWins: o.TopPlayerWins,
		CurrentStreak: CurrentStreak{
			PlayerID: idPtr(o.CurrentStreak.PlayerID),
			Streak:   o.CurrentStreak.Streak,
		},
		FavoritePlace: o.FavoritePlace,
		Places:        places,
	}
}

func idPtr(id *model.PlayerID) *string {
	if id == nil {
		return nil
	}
	s := string(*id)
	return &s
}

// Title is a rung of the title ladder
type Title struct {
	Min   int    `json:"min"`
	Title string `json:"title"`
}

// TitlesFromLadder converts the ladder
func TitlesFromLadder(ladder []titles.Threshold) []Title {
	result := make([]Title, len(ladder))
	for i, t := range ladder {
		result[i] = Title{Min: t.Min, Title: t.Title}
	}
	return result
}

// Achievement is an unlockable milestone
type Achievement struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Earned      bool   `json:"earned"`
}

// AchievementsFromModel converts evaluated achievements
func AchievementsFromModel(achs []achievements.Achievement) []Achievement {
	result := make([]Achievement, len(achs))
	for i, a := range achs {
		result[i] = Achievement{
			ID:          a.ID,
			Icon:        a.Icon,
			Name:        a.Name,
			Description: a.Description,
			Category:    string(a.Category),
			Earned:      a.Earned,
		}
	}
	return result
}

// AchievementDefinitionsFromModel converts the registry; nothing is earned
func AchievementDefinitionsFromModel(defs []achievements.Definition) []Achievement {
	result := make([]Achievement, len(defs))
	for i, d := range defs {
		result[i] = Achievement{
			ID:          d.ID,
			Icon:        d.Icon,
			Name:        d.Name,
			Description: d.Description,
			Category:    string(d.Category),
		}
	}
	return result
}

// BadgeCount is a collected badge with the number of wins carrying it
type BadgeCount struct {
	Badge Badge `json:"badge"`
	Count int   `json:"count"`
}

// Profile is a player's page
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

// ProfileFromLedger converts a ledger.Profile
func ProfileFromLedger(p *ledger.Profile) Profile {
	var next *Title
	if p.NextTitle != nil {
		next = &Title{Min: p.NextTitle.Min, Title: p.NextTitle.Title}
	}
	badges := make([]BadgeCount, len(p.Badges))
	for i, b := range p.Badges {
		badges[i] = BadgeCount{Badge: BadgeFromCatalog(b.Badge), Count: b.Count}
	}
	earned, total := achievements.Summary(p.Achievements)
	return Profile{
		Player:             PlayerFromModel(&p.Player),
		Stats:              statsFrom(p.Stats),
		Streaks:            Streaks{Current: p.Streaks.CurrentStreak, Max: p.Streaks.MaxStreak},
		Title:              p.Title,
		NextTitle:          next,
		Achievements:       AchievementsFromModel(p.Achievements),
		AchievementsEarned: earned,
		AchievementsTotal:  total,
		Badges:             badges,
		Wins:               GamesFromModel(p.Wins),
	}
}

// Category is a badge category
type Category struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// CategoryGroup is a category and its badges
type CategoryGroup struct {
	Category Category `json:"category"`
	Badges   []Badge  `json:"badges"`
}

// CategoriesFromCatalog converts the badge categories
func CategoriesFromCatalog(cats []catalog.Category) []Category {
	result := make([]Category, len(cats))
	for i, c := range cats {
		result[i] = Category{Value: c.Value, Label: c.Label, Description: c.Description}
	}
	return result
}

// GroupsFromCatalog converts grouped badges
func GroupsFromCatalog(groups []catalog.CategoryGroup) []CategoryGroup {
	result := make([]CategoryGroup, len(groups))
	for i, g := range groups {
		result[i] = CategoryGroup{
			Category: Category{Value: g.Category.Value, Label: g.Category.Label, Description: g.Category.Description},
			Badges:   BadgesFromCatalog(g.Badges),
		}
	}
	return result
}

// GameType is a selectable game type
type GameType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GameTypesFromCatalog converts game types
func GameTypesFromCatalog(types []catalog.GameTypeInfo) []GameType {
	result := make([]GameType, len(types))
	for i, t := range types {
		result[i] = GameType{Value: string(t.Value), Label: t.Label}
	}
	return result
}

// Mood is a selectable mood
type Mood struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

// MoodsFromCatalog converts moods
func MoodsFromCatalog(moods []catalog.MoodInfo) []Mood {
	result := make([]Mood, len(moods))
	for i, m := range moods {
		result[i] = Mood{Value: string(m.Value), Label: m.Label, Emoji: m.Emoji, Text: m.Text}
	}
	return result
}

// RollResponse is the result of a badge preview
type RollResponse struct {
	Badges []Badge `json:"badges"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status string `json:"status"`
}
