package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cardnight/ledger/internal/api/apierr"
	"github.com/cardnight/ledger/internal/api/handler"
	"github.com/cardnight/ledger/internal/api/middleware"
	"github.com/cardnight/ledger/internal/api/response"
	sharedmw "github.com/cardnight/ledger/internal/middleware"
	"github.com/cardnight/ledger/internal/services/ledger"
	"github.com/cardnight/ledger/internal/sse"
)

// RateLimitConfig controls the per-IP limit on write endpoints
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	Ledger           *ledger.Service
	HubManager       *sse.HubManager
	CORSAllowOrigins []string
	RateLimit        RateLimitConfig
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	playerHandler := handler.NewPlayerHandler(cfg.Ledger)
	gameHandler := handler.NewGameHandler(cfg.Ledger)
	catalogHandler := handler.NewCatalogHandler(cfg.Ledger)
	statsHandler := handler.NewStatsHandler(cfg.Ledger)
	eventsHandler := handler.NewEventsHandler(cfg.HubManager)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(sharedmw.Logging(cfg.Logger))
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Players
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/profile", playerHandler.Profile).Methods(http.MethodGet)

	// Games
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games", gameHandler.Record).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)

	// Reference data
	api.HandleFunc("/badges", catalogHandler.Badges).Methods(http.MethodGet)
	api.HandleFunc("/badges/roll", catalogHandler.Roll).Methods(http.MethodPost)
	api.HandleFunc("/badges/{id}", catalogHandler.Badge).Methods(http.MethodGet)
	api.HandleFunc("/badge-categories", catalogHandler.Categories).Methods(http.MethodGet)
	api.HandleFunc("/titles", catalogHandler.Titles).Methods(http.MethodGet)
	api.HandleFunc("/achievements", catalogHandler.Achievements).Methods(http.MethodGet)
	api.HandleFunc("/game-types", catalogHandler.GameTypes).Methods(http.MethodGet)
	api.HandleFunc("/moods", catalogHandler.Moods).Methods(http.MethodGet)

	// Group views
	api.HandleFunc("/leaderboard", statsHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/podium", statsHandler.Podium).Methods(http.MethodGet)
	api.HandleFunc("/overview", statsHandler.Overview).Methods(http.MethodGet)
	api.HandleFunc("/places", statsHandler.Places).Methods(http.MethodGet)

	// Live feed
	api.HandleFunc("/events", eventsHandler.Stream).Methods(http.MethodGet)

	return middleware.CORS(cfg.CORSAllowOrigins)(r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.OK(w, response.HealthResponse{Status: "ok"})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
