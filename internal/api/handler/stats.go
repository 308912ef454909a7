package handler

import (
	"net/http"

	"github.com/cardnight/ledger/internal/api/response"
	"github.com/cardnight/ledger/internal/services/ledger"
)

// StatsHandler serves the group-wide read models
type StatsHandler struct {
	ledger *ledger.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(svc *ledger.Service) *StatsHandler {
	return &StatsHandler{ledger: svc}
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *StatsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	standings, err := h.ledger.Leaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.StandingsFromStats(standings))
}

// Podium handles GET /api/v1/podium
func (h *StatsHandler) Podium(w http.ResponseWriter, r *http.Request) {
	standings, err := h.ledger.Podium(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.StandingsFromStats(standings))
}

// Overview handles GET /api/v1/overview
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.ledger.Overview(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.OverviewFromStats(overview))
}

// Places handles GET /api/v1/places
func (h *StatsHandler) Places(w http.ResponseWriter, r *http.Request) {
	places, err := h.ledger.Places(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, places)
}
