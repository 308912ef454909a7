package achievements

import (
	"slices"

	"github.com/cardnight/ledger/internal/services/catalog"
)

var registry = []Definition{
	// Debut
	{
		ID: "welcome", Icon: "🎮", Name: "Bienvenue",
		Description: "Rejoindre l'aventure", Category: CategoryDebut,
		Condition: func(*Input) bool { return true },
	},
	{
		ID: "first-victory", Icon: "🏆", Name: "Première Victoire",
		Description: "Remporter sa première partie", Category: CategoryDebut,
		Condition: func(in *Input) bool { return in.Stats.Wins >= 1 },
	},
	{
		ID: "regular-guest", Icon: "🎲", Name: "Habitué",
		Description: "Jouer 5 parties", Category: CategoryDebut,
		Condition: func(in *Input) bool { return in.Stats.GamesPlayed >= 5 },
	},

	// Victories
	{
		ID: "wins-5", Icon: "⭐", Name: "Étoile Montante",
		Description: "5 victoires totales", Category: CategoryVictories,
		Condition: func(in *Input) bool { return in.Stats.Wins >= 5 },
	},
	{
		ID: "wins-10", Icon: "👑", Name: "Roi des Cartes",
		Description: "10 victoires totales", Category: CategoryVictories,
		Condition: func(in *Input) bool { return in.Stats.Wins >= 10 },
	},
	{
		ID: "wins-25", Icon: "🌟", Name: "Champion",
		Description: "25 victoires totales", Category: CategoryVictories,
		Condition: func(in *Input) bool { return in.Stats.Wins >= 25 },
	},
	{
		ID: "wins-50", Icon: "💫", Name: "Légende",
		Description: "50 victoires totales", Category: CategoryVictories,
		Condition: func(in *Input) bool { return in.Stats.Wins >= 50 },
	},
	{
		ID: "wins-100", Icon: "🏛️", Name: "Immortel",
		Description: "100 victoires totales", Category: CategoryVictories,
		Condition: func(in *Input) bool { return in.Stats.Wins >= 100 },
	},

	// Streaks
	{
		ID: "streak-3", Icon: "🔥", Name: "En Feu",
		Description: "3 victoires d'affilée", Category: CategoryStreaks,
		Condition: func(in *Input) bool { return in.MaxStreak >= 3 },
	},
	{
		ID: "streak-5", Icon: "💪", Name: "Inarrêtable",
		Description: "5 victoires d'affilée", Category: CategoryStreaks,
		Condition: func(in *Input) bool { return in.MaxStreak >= 5 },
	},
	{
		ID: "streak-7", Icon: "⚡", Name: "Électrique",
		Description: "7 victoires d'affilée", Category: CategoryStreaks,
		Condition: func(in *Input) bool { return in.MaxStreak >= 7 },
	},
	{
		ID: "streak-10", Icon: "🌪️", Name: "Ouragan",
		Description: "10 victoires d'affilée", Category: CategoryStreaks,
		Condition: func(in *Input) bool { return in.MaxStreak >= 10 },
	},

	// Regularity
	{
		ID: "games-20", Icon: "🎯", Name: "Régulier",
		Description: "20 parties jouées", Category: CategoryRegularity,
		Condition: func(in *Input) bool { return in.Stats.GamesPlayed >= 20 },
	},
	{
		ID: "games-50", Icon: "📅", Name: "Fidèle",
		Description: "50 parties jouées", Category: CategoryRegularity,
		Condition: func(in *Input) bool { return in.Stats.GamesPlayed >= 50 },
	},
	{
		ID: "games-100", Icon: "🏅", Name: "Vétéran",
		Description: "100 parties jouées", Category: CategoryRegularity,
		Condition: func(in *Input) bool { return in.Stats.GamesPlayed >= 100 },
	},

	// Win rate, gated by a minimum number of games
	{
		ID: "rate-40", Icon: "📈", Name: "Bon Ratio",
		Description: "Taux de victoire de 40% sur au moins 5 parties", Category: CategoryWinRate,
		Condition: func(in *Input) bool { return winRateReached(in, 40, 5) },
	},
	{
		ID: "rate-60", Icon: "📊", Name: "Performant",
		Description: "Taux de victoire de 60% sur au moins 10 parties", Category: CategoryWinRate,
		Condition: func(in *Input) bool { return winRateReached(in, 60, 10) },
	},
	{
		ID: "rate-75", Icon: "💯", Name: "Perfectionniste",
		Description: "Taux de victoire de 75% sur au moins 10 parties", Category: CategoryWinRate,
		Condition: func(in *Input) bool { return winRateReached(in, 75, 10) },
	},
	{
		ID: "rate-90", Icon: "🎖️", Name: "Élite",
		Description: "Taux de victoire de 90% sur au moins 10 parties", Category: CategoryWinRate,
		Condition: func(in *Input) bool { return winRateReached(in, 90, 10) },
	},

	// Diversity
	{
		ID: "game-types-3", Icon: "🃏", Name: "Polyvalent",
		Description: "Gagner à 3 jeux différents", Category: CategoryDiversity,
		Condition: func(in *Input) bool { return distinctGameTypes(in) >= 3 },
	},
	{
		ID: "game-types-5", Icon: "🎪", Name: "Maître Multi-Jeux",
		Description: "Gagner à 5 jeux différents", Category: CategoryDiversity,
		Condition: func(in *Input) bool { return distinctGameTypes(in) >= 5 },
	},
	{
		ID: "places-3", Icon: "🗺️", Name: "Voyageur",
		Description: "Gagner dans 3 lieux différents", Category: CategoryDiversity,
		Condition: func(in *Input) bool { return distinctPlaces(in) >= 3 },
	},
	{
		ID: "places-5", Icon: "🌍", Name: "Globe-Trotter",
		Description: "Gagner dans 5 lieux différents", Category: CategoryDiversity,
		Condition: func(in *Input) bool { return distinctPlaces(in) >= 5 },
	},

	// Badge collection
	{
		ID: "badges-5", Icon: "🏷️", Name: "Collectionneur",
		Description: "Obtenir 5 badges différents", Category: CategoryBadges,
		Condition: func(in *Input) bool { return len(in.Badges) >= 5 },
	},
	{
		ID: "badges-10", Icon: "📚", Name: "Archiviste",
		Description: "Obtenir 10 badges différents", Category: CategoryBadges,
		Condition: func(in *Input) bool { return len(in.Badges) >= 10 },
	},
	{
		ID: "badges-20", Icon: "🗃️", Name: "Conservateur",
		Description: "Obtenir 20 badges différents", Category: CategoryBadges,
		Condition: func(in *Input) bool { return len(in.Badges) >= 20 },
	},
	{
		ID: "badges-30", Icon: "🏆", Name: "Maître Collectionneur",
		Description: "Obtenir 30 badges différents", Category: CategoryBadges,
		Condition: func(in *Input) bool { return len(in.Badges) >= 30 },
	},

	// Special
	{
		ID: "night-owl", Icon: "🦉", Name: "Oiseau de Nuit",
		Description: "Gagner après minuit", Category: CategorySpecial,
		Condition: func(in *Input) bool { return slices.Contains(in.Badges, catalog.BadgeNightOwl) },
	},
	{
		ID: "early-bird", Icon: "🌅", Name: "Lève-Tôt",
		Description: "Gagner tôt le matin", Category: CategorySpecial,
		Condition: func(in *Input) bool { return slices.Contains(in.Badges, catalog.BadgeEarlyBird) },
	},
	{
		ID: "strategist", Icon: "🧠", Name: "Stratège",
		Description: "5 victoires avec badges stratégie", Category: CategorySpecial,
		Condition: func(in *Input) bool { return winsWithAny(in, catalog.StrategyBadges...) >= 5 },
	},
	{
		ID: "lucky", Icon: "🍀", Name: "Chanceux",
		Description: "3 victoires avec badges chance", Category: CategorySpecial,
		Condition: func(in *Input) bool { return winsWithAny(in, catalog.LuckBadges...) >= 3 },
	},

	// Domination
	{
		ID: "flawless-10", Icon: "💎", Name: "Sans Défaut",
		Description: `10 victoires avec badge "Sans Faute"`, Category: CategoryDomination,
		Condition: func(in *Input) bool { return winsWithAny(in, catalog.BadgeFlawless) >= 10 },
	},
	{
		ID: "domination-10", Icon: "👊", Name: "Dominateur",
		Description: `10 victoires avec badge "Domination"`, Category: CategoryDomination,
		Condition: func(in *Input) bool { return winsWithAny(in, catalog.BadgeDomination) >= 10 },
	},
	{
		ID: "aggressive-5", Icon: "🦈", Name: "Prédateur",
		Description: `5 victoires avec badge "Requin"`, Category: CategoryDomination,
		Condition: func(in *Input) bool { return winsWithAny(in, catalog.BadgeAggressive) >= 5 },
	},
}
