package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cardnight/ledger/internal/api/request"
	"github.com/cardnight/ledger/internal/api/response"
	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/ledger"
)

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	ledger *ledger.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(svc *ledger.Service) *PlayerHandler {
	return &PlayerHandler{ledger: svc}
}

func playerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["id"])
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.ledger.ListPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.PlayersFromModel(players))
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	player, err := h.ledger.CreatePlayer(r.Context(), req.ToInput())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	player, err := h.ledger.GetPlayer(r.Context(), playerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.PlayerFromModel(player))
}

// Update handles PATCH /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePlayerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	player, err := h.ledger.UpdatePlayer(r.Context(), playerID(r), req.ToUpdate())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.DeletePlayer(r.Context(), playerID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Profile handles GET /api/v1/players/{id}/profile
func (h *PlayerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.ledger.Profile(r.Context(), playerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.ProfileFromLedger(profile))
}
