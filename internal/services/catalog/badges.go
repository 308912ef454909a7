// Package catalog holds the static reference data of the ledger: badges,
// badge categories, game types and moods.
//
// Badge identifiers are persisted on games, so an identifier must never be
// removed or reused for a different meaning.
package catalog

import (
	"slices"
	"strings"
)

// Badge identifiers awarded by rule rather than by random draw
const (
	BadgeFirstWin      = "first-win"
	BadgeAnniversary   = "anniversary"
	BadgeNightOwl      = "night-owl"
	BadgeEarlyBird     = "early-bird"
	BadgeStreakBreaker = "streak-breaker"
	BadgeHatTrick      = "hat-trick"
)

// Badge identifiers referenced by achievements
const (
	BadgeFlawless   = "flawless"
	BadgeDomination = "domination"
	BadgeAggressive = "aggressive"
)

// placeholderIcon is shown for identifiers missing from the catalog
const placeholderIcon = "🏷️"

// BadgeDefinition describes a badge that can be attached to a game
type BadgeDefinition struct {
	Value       string
	Icon        string
	Name        string
	Category    string
	Description string

	// Placeholder is true when the definition was synthesized for an unknown identifier
	Placeholder bool
}

// ContextualBadges are never drawn at random
var ContextualBadges = []string{
	BadgeFirstWin,
	BadgeAnniversary,
	BadgeNightOwl,
	BadgeEarlyBird,
	BadgeStreakBreaker,
	BadgeHatTrick,
}

// StrategyBadges are the badges of the strategie category
var StrategyBadges = []string{"mastermind", "bluffer", "trap", "calculator", "reader"}

// LuckBadges are the badges of the chance category
var LuckBadges = []string{"lucky-draw", "miracle", "against-odds"}

var badges = []BadgeDefinition{
	// Performance
	{Value: "comeback", Icon: "🔄", Name: "Le Phénix", Category: CategoryPerformance,
		Description: "Remporter la victoire après avoir été en très mauvaise posture pendant la partie."},
	{Value: BadgeFlawless, Icon: "💎", Name: "Sans Faute", Category: CategoryPerformance,
		Description: "Gagner sans commettre une seule erreur stratégique notable."},
	{Value: BadgeDomination, Icon: "👊", Name: "Domination Totale", Category: CategoryPerformance,
		Description: "Écraser tous les adversaires avec un écart de score significatif."},
	{Value: "clutch", Icon: "🎯", Name: "Sang Froid", Category: CategoryPerformance,
		Description: "Réussir un coup décisif sous pression extrême qui retourne la partie."},
	{Value: "speedrun", Icon: "⚡", Name: "Éclair", Category: CategoryPerformance,
		Description: "Remporter la partie en un temps record, bien plus vite que la normale."},

	// Chance
	{Value: "lucky-draw", Icon: "🍀", Name: "Main du Destin", Category: CategoryChance,
		Description: "Recevoir une main ou des cartes exceptionnellement favorables dès le départ."},
	{Value: "miracle", Icon: "✨", Name: "Miracle", Category: CategoryChance,
		Description: "Gagner grâce à un tirage ou un événement improbable au dernier moment."},
	{Value: "against-odds", Icon: "🎲", Name: "Contre Toute Attente", Category: CategoryChance,
		Description: "Victoire alors que les probabilités étaient clairement contre vous."},

	// Strategy
	{Value: "mastermind", Icon: "🧠", Name: "Cerveau", Category: CategoryStrategy,
		Description: "Victoire obtenue grâce à une stratégie élaborée et parfaitement exécutée."},
	{Value: "bluffer", Icon: "🎭", Name: "Maître du Bluff", Category: CategoryStrategy,
		Description: "Gagner en faisant croire aux adversaires quelque chose de faux."},
	{Value: "trap", Icon: "🕸️", Name: "Le Piège", Category: CategoryStrategy,
		Description: "Tendre un piège à un adversaire qui tombe dedans et perd la partie."},
	{Value: "calculator", Icon: "🔢", Name: "Calculateur", Category: CategoryStrategy,
		Description: "Compter les cartes ou calculer les probabilités pour prendre l'avantage."},
	{Value: "reader", Icon: "👁️", Name: "Lecteur d'Âmes", Category: CategoryStrategy,
		Description: "Deviner le jeu des adversaires en lisant leurs réactions et comportements."},

	// Timing
	{Value: "photo-finish", Icon: "📸", Name: "Photo Finish", Category: CategoryTiming,
		Description: "Gagner avec le plus petit écart possible, à un cheveu de la défaite."},
	{Value: "last-card", Icon: "🃏", Name: "Dernière Carte", Category: CategoryTiming,
		Description: "La victoire s'est jouée littéralement sur la toute dernière carte."},
	{Value: "overtime", Icon: "⏰", Name: "Prolongations", Category: CategoryTiming,
		Description: "Partie qui a duré beaucoup plus longtemps que prévu."},
	{Value: "marathon", Icon: "🏃", Name: "Marathon", Category: CategoryTiming,
		Description: "Partie exceptionnellement longue, une vraie épreuve d'endurance."},

	// Social
	{Value: "underdog", Icon: "🐕", Name: "Outsider", Category: CategorySocial,
		Description: "Gagner alors que personne ne vous donnait favori avant la partie."},
	{Value: "giant-slayer", Icon: "⚔️", Name: "Tueur de Géants", Category: CategorySocial,
		Description: "Battre le joueur considéré comme le meilleur ou le plus expérimenté."},
	{Value: "redemption", Icon: "🔥", Name: "Rédemption", Category: CategorySocial,
		Description: "Gagner après une série de défaites consécutives."},
	{Value: "nemesis", Icon: "💀", Name: "Némésis", Category: CategorySocial,
		Description: "Battre un adversaire qui vous avait battu plusieurs fois auparavant."},
	{Value: "teacher", Icon: "📚", Name: "Le Professeur", Category: CategorySocial,
		Description: "Gagner tout en expliquant vos coups et en enseignant aux autres."},

	// Style
	{Value: "showman", Icon: "🎪", Name: "Showman", Category: CategoryStyle,
		Description: "Gagner avec panache, en faisant le spectacle et en divertissant la galerie."},
	{Value: "silent", Icon: "🤫", Name: "L'Ombre", Category: CategoryStyle,
		Description: "Victoire obtenue en restant discret, sans attirer l'attention jusqu'au bout."},
	{Value: BadgeAggressive, Icon: "🦈", Name: "Le Requin", Category: CategoryStyle,
		Description: "Style de jeu très agressif, mettant constamment la pression sur les adversaires."},
	{Value: "patient", Icon: "🐢", Name: "La Tortue", Category: CategoryStyle,
		Description: "Victoire obtenue en jouant prudemment et en attendant le bon moment."},
	{Value: "unpredictable", Icon: "🌀", Name: "L'Imprévisible", Category: CategoryStyle,
		Description: "Jouer de manière totalement imprévisible, déstabilisant tous les adversaires."},

	// Special moments
	{Value: BadgeFirstWin, Icon: "🏆", Name: "Première Victoire", Category: CategorySpecial,
		Description: "La toute première victoire d'un joueur dans ce groupe."},
	{Value: BadgeStreakBreaker, Icon: "💥", Name: "Briseur de Série", Category: CategorySpecial,
		Description: "Mettre fin à la série de victoires d'un autre joueur."},
	{Value: "perfect-hand", Icon: "🌟", Name: "Main Parfaite", Category: CategorySpecial,
		Description: "Obtenir une combinaison de cartes exceptionnellement rare."},
	{Value: BadgeAnniversary, Icon: "🎂", Name: "Cadeau d'Anniversaire", Category: CategorySpecial,
		Description: "Gagner le jour de son anniversaire."},
	{Value: BadgeHatTrick, Icon: "🎩", Name: "Coup du Chapeau", Category: CategorySpecial,
		Description: "Troisième victoire consécutive de la soirée."},

	// Ambiance
	{Value: "tension", Icon: "😰", Name: "Haute Tension", Category: CategoryAmbiance,
		Description: "Partie où la tension était palpable du début à la fin."},
	{Value: "laughs", Icon: "😂", Name: "Fou Rire", Category: CategoryAmbiance,
		Description: "Partie marquée par des moments hilarants et des fous rires."},
	{Value: "drama", Icon: "🎬", Name: "Digne d'un Film", Category: CategoryAmbiance,
		Description: "Rebondissements dignes d'un scénario de cinéma."},
	{Value: "salty", Icon: "🧂", Name: "Récolte de Sel", Category: CategoryAmbiance,
		Description: "Victoire qui a généré beaucoup de frustration chez les perdants."},
	{Value: "respect", Icon: "🤝", Name: "Respect Mutuel", Category: CategoryAmbiance,
		Description: "Partie fair-play où tous les joueurs se sont respectés."},

	// Conditions
	{Value: BadgeNightOwl, Icon: "🦉", Name: "Oiseau de Nuit", Category: CategoryConditions,
		Description: "Victoire obtenue très tard dans la nuit (après minuit)."},
	{Value: BadgeEarlyBird, Icon: "🌅", Name: "Lève-Tôt", Category: CategoryConditions,
		Description: "Partie jouée tôt le matin."},
	{Value: "hangover", Icon: "🍺", Name: "Lendemain Difficile", Category: CategoryConditions,
		Description: "Gagner malgré un état de fatigue ou les effets de la veille."},
	{Value: "focused", Icon: "🎯", Name: "Concentration Absolue", Category: CategoryConditions,
		Description: "Victoire grâce à une concentration sans faille du début à la fin."},
}

var badgeIndex = func() map[string]int {
	index := make(map[string]int, len(badges))
	for i, b := range badges {
		index[b.Value] = i
	}
	return index
}()

// Badges returns a copy of the full catalog in display order
func Badges() []BadgeDefinition {
	return slices.Clone(badges)
}

// Lookup returns the definition for an identifier
func Lookup(value string) (BadgeDefinition, bool) {
	i, ok := badgeIndex[value]
	if !ok {
		return BadgeDefinition{}, false
	}
	return badges[i], true
}

// Resolve returns the definition for an identifier, or a placeholder
// named after the identifier if the catalog does not know it
func Resolve(value string) BadgeDefinition {
	if b, ok := Lookup(value); ok {
		return b
	}
	return BadgeDefinition{
		Value:       value,
		Icon:        placeholderIcon,
		Name:        value,
		Placeholder: true,
	}
}

// IsContextual returns true if the badge is only awarded by rule
func IsContextual(value string) bool {
	return slices.Contains(ContextualBadges, value)
}

// RandomEligible returns the identifiers that may be drawn at random, in catalog order
func RandomEligible() []string {
	eligible := make([]string, 0, len(badges))
	for _, b := range badges {
		if !IsContextual(b.Value) {
			eligible = append(eligible, b.Value)
		}
	}
	return eligible
}

// Search filters the catalog by category and by a case-insensitive term
// matched against name and description. Empty arguments match everything.
func Search(category, term string) []BadgeDefinition {
	term = strings.ToLower(strings.TrimSpace(term))
	var result []BadgeDefinition
	for _, b := range badges {
		if category != "" && b.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(b.Name), term) &&
			!strings.Contains(strings.ToLower(b.Description), term) {
			continue
		}
		result = append(result, b)
	}
	return result
}

// ByCategory groups the given definitions by category, in category display order.
// Categories with no badges are omitted.
func ByCategory(defs []BadgeDefinition) []CategoryGroup {
	var groups []CategoryGroup
	for _, cat := range categories {
		var members []BadgeDefinition
		for _, b := range defs {
			if b.Category == cat.Value {
				members = append(members, b)
			}
		}
		if len(members) > 0 {
			groups = append(groups, CategoryGroup{Category: cat, Badges: members})
		}
	}
	return groups
}
