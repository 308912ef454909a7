package catalog

import (
	"slices"

	"github.com/cardnight/ledger/internal/model"
)

// Badge categories
const (
	CategoryPerformance = "performance"
	CategoryChance      = "chance"
	CategoryStrategy    = "strategie"
	CategoryTiming      = "timing"
	CategorySocial      = "social"
	CategoryStyle       = "style"
	CategorySpecial     = "special"
	CategoryAmbiance    = "ambiance"
	CategoryConditions  = "conditions"
)

// Category is a grouping of badges in the browser
type Category struct {
	Value       string
	Label       string
	Description string
}

// CategoryGroup is a category together with its badges
type CategoryGroup struct {
	Category Category
	Badges   []BadgeDefinition
}

var categories = []Category{
	{CategoryPerformance, "🏅 Performance", "Badges liés à la qualité de jeu et aux exploits techniques"},
	{CategoryChance, "🎲 Chance & Destin", "Quand la chance sourit (ou pas) aux audacieux"},
	{CategoryStrategy, "🧠 Stratégie", "Pour les fins stratèges et les esprits calculateurs"},
	{CategoryTiming, "⏱️ Timing", "Tout est une question de moment"},
	{CategorySocial, "👥 Contexte Social", "Les dynamiques entre joueurs"},
	{CategoryStyle, "🎨 Style de Jeu", "Chaque joueur a sa signature"},
	{CategorySpecial, "⭐ Moments Spéciaux", "Des instants rares et mémorables"},
	{CategoryAmbiance, "🎭 Ambiance", "L'atmosphère autour de la table"},
	{CategoryConditions, "🌙 Conditions", "Les circonstances de la partie"},
}

// Categories returns the badge categories in display order
func Categories() []Category {
	return slices.Clone(categories)
}

// LookupCategory returns a category by value
func LookupCategory(value string) (Category, bool) {
	for _, c := range categories {
		if c.Value == value {
			return c, true
		}
	}
	return Category{}, false
}

// GameTypeInfo is a selectable game type with its display label
type GameTypeInfo struct {
	Value model.GameType
	Label string
}

var gameTypes = []GameTypeInfo{
	{model.GameTypeBelote, "Belote"},
	{model.GameTypeTarot, "Tarot"},
	{model.GameTypeGinBresilien, "Gin Brésilien"},
	{model.GameTypePoker, "Poker"},
	{model.GameTypeUno, "UNO"},
	{model.GameTypeRami, "Rami"},
	{model.GameTypeBataille, "Bataille"},
	{model.GameTypePresident, "Président"},
	{model.GameTypeCoinche, "Coinche"},
	{model.GameTypeBridge, "Bridge"},
	{model.GameTypeBlackjack, "Blackjack"},
	{model.GameTypeOther, "Autre"},
}

// GameTypes returns the selectable game types
func GameTypes() []GameTypeInfo {
	return slices.Clone(gameTypes)
}

// ValidGameType returns true if the game type is known
func ValidGameType(gt model.GameType) bool {
	return slices.ContainsFunc(gameTypes, func(info GameTypeInfo) bool { return info.Value == gt })
}

// GameTypeLabel returns the display label of a game type, or the raw value if unknown
func GameTypeLabel(gt model.GameType) string {
	for _, info := range gameTypes {
		if info.Value == gt {
			return info.Label
		}
	}
	return string(gt)
}

const (
	fallbackMoodEmoji = "🎮"
	fallbackMoodText  = "Partie de cartes"
)

// MoodInfo describes the atmosphere of a game
type MoodInfo struct {
	Value model.Mood
	Label string
	Emoji string
	Text  string
}

var moods = []MoodInfo{
	{model.MoodEpic, "🔥 Épique", "🔥", "Victoire épique"},
	{model.MoodChill, "😎 Tranquille", "😎", "Partie tranquille"},
	{model.MoodIntense, "⚡ Intense", "⚡", "Partie intense"},
	{model.MoodFunny, "😂 Hilarant", "😂", "Partie hilarante"},
	{model.MoodDramatic, "🎭 Dramatique", "🎭", "Fin dramatique"},
	{model.MoodRevenge, "😈 Revanche", "😈", "Revanche réussie"},
	{model.MoodChaos, "🌪️ Chaotique", "🌪️", "Chaos total"},
	{model.MoodTense, "😰 Stressant", "😰", "Partie stressante"},
	{model.MoodLegendary, "⭐ Légendaire", "⭐", "Partie légendaire"},
}

// Moods returns the selectable moods
func Moods() []MoodInfo {
	return slices.Clone(moods)
}

// ValidMood returns true if the mood is known
func ValidMood(m model.Mood) bool {
	_, ok := lookupMood(m)
	return ok
}

// MoodEmoji returns the emoji for a mood, with a generic fallback
func MoodEmoji(m model.Mood) string {
	if info, ok := lookupMood(m); ok {
		return info.Emoji
	}
	return fallbackMoodEmoji
}

// MoodText returns the short sentence for a mood, with a generic fallback
func MoodText(m model.Mood) string {
	if info, ok := lookupMood(m); ok {
		return info.Text
	}
	return fallbackMoodText
}

func lookupMood(m model.Mood) (MoodInfo, bool) {
	for _, info := range moods {
		if info.Value == m {
			return info, true
		}
	}
	return MoodInfo{}, false
}
