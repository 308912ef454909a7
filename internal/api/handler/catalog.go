package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cardnight/ledger/internal/api/apierr"
	"github.com/cardnight/ledger/internal/api/request"
	"github.com/cardnight/ledger/internal/api/response"
	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/achievements"
	"github.com/cardnight/ledger/internal/services/catalog"
	"github.com/cardnight/ledger/internal/services/ledger"
	"github.com/cardnight/ledger/internal/services/titles"
)

// CatalogHandler serves the static reference data and badge previews
type CatalogHandler struct {
	ledger *ledger.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc *ledger.Service) *CatalogHandler {
	return &CatalogHandler{ledger: svc}
}

// Badges handles GET /api/v1/badges?category=&q=&grouped=
func (h *CatalogHandler) Badges(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	if category != "" {
		if _, ok := catalog.LookupCategory(category); !ok {
			WriteError(w, NewInvalidRequestError("unknown category"))
			return
		}
	}

	defs := catalog.Search(category, q.Get("q"))
	if grouped, _ := strconv.ParseBool(q.Get("grouped")); grouped {
		response.OK(w, response.GroupsFromCatalog(catalog.ByCategory(defs)))
		return
	}
	response.OK(w, response.BadgesFromCatalog(defs))
}

// Badge handles GET /api/v1/badges/{id}
func (h *CatalogHandler) Badge(w http.ResponseWriter, r *http.Request) {
	def, ok := catalog.Lookup(mux.Vars(r)["id"])
	if !ok {
		WriteError(w, apierr.NewBadgeNotFoundError())
		return
	}
	response.OK(w, response.BadgeFromCatalog(def))
}

// Roll handles POST /api/v1/badges/roll
func (h *CatalogHandler) Roll(w http.ResponseWriter, r *http.Request) {
	var req request.RollBadgesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	badges, err := h.ledger.PreviewBadges(r.Context(), model.PlayerID(req.WinnerID), model.Mood(req.Mood), req.Time)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.RollResponse{Badges: response.ResolveBadges(badges)})
}

// Categories handles GET /api/v1/badge-categories
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	response.OK(w, response.CategoriesFromCatalog(catalog.Categories()))
}

// Titles handles GET /api/v1/titles
func (h *CatalogHandler) Titles(w http.ResponseWriter, r *http.Request) {
	response.OK(w, response.TitlesFromLadder(titles.Ladder()))
}

// Achievements handles GET /api/v1/achievements
func (h *CatalogHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	response.OK(w, response.AchievementDefinitionsFromModel(achievements.Definitions()))
}

// GameTypes handles GET /api/v1/game-types
func (h *CatalogHandler) GameTypes(w http.ResponseWriter, r *http.Request) {
	response.OK(w, response.GameTypesFromCatalog(catalog.GameTypes()))
}

// Moods handles GET /api/v1/moods
func (h *CatalogHandler) Moods(w http.ResponseWriter, r *http.Request) {
	response.OK(w, response.MoodsFromCatalog(catalog.Moods()))
}
