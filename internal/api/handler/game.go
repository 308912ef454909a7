package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cardnight/ledger/internal/api/request"
	"github.com/cardnight/ledger/internal/api/response"
	"github.com/cardnight/ledger/internal/model"
	"github.com/cardnight/ledger/internal/services/ledger"
	"github.com/cardnight/ledger/internal/services/stats"
)

// GameHandler handles game endpoints
type GameHandler struct {
	ledger *ledger.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(svc *ledger.Service) *GameHandler {
	return &GameHandler{ledger: svc}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// List handles GET /api/v1/games?winner=&place=
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := stats.Filter{
		WinnerID: model.PlayerID(q.Get("winner")),
		Place:    q.Get("place"),
	}

	games, err := h.ledger.ListGames(r.Context(), filter)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.GamesFromModel(games))
}

// Record handles POST /api/v1/games
func (h *GameHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req request.RecordGameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	game, err := h.ledger.RecordGame(r.Context(), req.ToInput())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := h.ledger.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.GameFromModel(game))
}

// Update handles PATCH /api/v1/games/{id}
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateGameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	game, err := h.ledger.UpdateGame(r.Context(), gameID(r), req.ToUpdate())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.GameFromModel(game))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.DeleteGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
