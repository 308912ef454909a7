package api_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardnight/ledger/internal/api"
	"github.com/cardnight/ledger/internal/api/apierr"
	"github.com/cardnight/ledger/internal/api/response"
	"github.com/cardnight/ledger/internal/factory"
	"github.com/cardnight/ledger/internal/testutil"
)

// testServer wires the router to an in-memory app with mocked clock and randomness
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T, rateLimit api.RateLimitConfig) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	t.Cleanup(func() { _ = app.Close() })

	router := api.NewRouter(api.RouterConfig{
		Logger:           testutil.NopLogger(),
		Ledger:           app.Ledger,
		HubManager:       app.HubManager,
		CORSAllowOrigins: []string{"http://localhost:5173"},
		RateLimit:        rateLimit,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apierr.ErrorResponse](t, rr).Error.Code
}

func createPlayer(t *testing.T, ts *testServer, name string) response.Player {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[response.Player](t, rr)
}

func recordGame(t *testing.T, ts *testServer, body map[string]any) response.Game {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/games", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[response.Game](t, rr)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decode[response.HealthResponse](t, rr).Status)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})

	rr := ts.request(http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeNotFound, errorCode(t, rr))
}

func TestPlayerLifecycle(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})

	alice := createPlayer(t, ts, "  Alice ")
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, "🃏", alice.Emoji)

	rr := ts.request(http.MethodPatch, "/api/v1/players/"+alice.ID, map[string]string{"emoji": "🦊"})
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode[response.Player](t, rr)
	assert.Equal(t, "🦊", updated.Emoji)
	assert.Equal(t, "Alice", updated.Name)

	rr = ts.request(http.MethodGet, "/api/v1/players", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]response.Player](t, rr), 1)

	rr = ts.request(http.MethodDelete, "/api/v1/players/"+alice.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/"+alice.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, errorCode(t, rr))
}

func TestCreatePlayerValidation(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeNameRequired, errorCode(t, rr))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", strings.NewReader("{"))
	bad := httptest.NewRecorder()
	ts.handler.ServeHTTP(bad, req)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, bad))
}

func TestRecordGame(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})
	alice := createPlayer(t, ts, "Alice")
	bob := createPlayer(t, ts, "Bob")

	game := recordGame(t, ts, map[string]any{
		"winner_id":    alice.ID,
		"time":         "23:30",
		"place":        "Le Bar",
		"game_type":    "tarot",
		"mood":         "chill",
		"participants": []string{bob.ID, alice.ID},
	})

	assert.Equal(t, "2024-03-02", game.Date)
	assert.Equal(t, "Tarot", game.GameTypeLabel)
	assert.Equal(t, "😎", game.MoodEmoji)
	assert.Equal(t, []string{bob.ID}, game.Participants)
	require.NotEmpty(t, game.Badges)
	assert.Equal(t, "first-win", game.Badges[0].Value)
	assert.NotEmpty(t, game.Badges[0].Name)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+game.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, game.ID, decode[response.Game](t, rr).ID)

	rr = ts.request(http.MethodGet, "/api/v1/players/"+alice.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, decode[response.Player](t, rr).Aggregates.Wins)
}

func TestRecordGameValidation(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})
	alice := createPlayer(t, ts, "Alice")

	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{"missing winner", map[string]any{}, http.StatusBadRequest, apierr.CodeWinnerRequired},
		{"unknown winner", map[string]any{"winner_id": "ghost"}, http.StatusNotFound, apierr.CodePlayerNotFound},
		{"bad date", map[string]any{"winner_id": alice.ID, "date": "02/03/2024"}, http.StatusBadRequest, apierr.CodeInvalidDate},
		{"bad time", map[string]any{"winner_id": alice.ID, "time": "25:00"}, http.StatusBadRequest, apierr.CodeInvalidTime},
		{"bad game type", map[string]any{"winner_id": alice.ID, "game_type": "chess"}, http.StatusBadRequest, apierr.CodeInvalidGameType},
		{"bad mood", map[string]any{"winner_id": alice.ID, "mood": "sleepy"}, http.StatusBadRequest, apierr.CodeInvalidMood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/games", tt.body)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.code, errorCode(t, rr))
		})
	}
}

func TestListGamesFilters(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})
	alice := createPlayer(t, ts, "Alice")
	bob := createPlayer(t, ts, "Bob")

	recordGame(t, ts, map[string]any{"winner_id": alice.ID, "date": "2024-01-01", "place": "Le Bar"})
	recordGame(t, ts, map[string]any{"winner_id": bob.ID, "date": "2024-01-02", "place": "Chez Bob"})
	recordGame(t, ts, map[string]any{"winner_id": alice.ID, "date": "2024-01-03", "place": "Chez Bob"})

	rr := ts.request(http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	all := decode[[]response.Game](t, rr)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-01-03", all[0].Date)

	rr = ts.request(http.MethodGet, "/api/v1/games?winner="+alice.ID+"&place=Chez+Bob", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	filtered := decode[[]response.Game](t, rr)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2024-01-03", filtered[0].Date)
}

func TestUpdateGameBadges(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})
	alice := createPlayer(t, ts, "Alice")
	game := recordGame(t, ts, map[string]any{"winner_id": alice.ID})

	rr := ts.request(http.MethodPatch, "/api/v1/games/"+game.ID, map[string]any{
		"badges": []string{"bluffer", "bluffer", "miracle"},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decode[response.Game](t, rr)
	require.Len(t, updated.Badges, 2)
	assert.Equal(t, "bluffer", updated.Badges[0].Value)
	assert.Equal(t, "miracle", updated.Badges[1].Value)

	rr = ts.request(http.MethodPatch, "/api/v1/games/"+game.ID, map[string]any{
		"badges": []string{"not-a-badge"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnknownBadge, errorCode(t, rr))

	rr = ts.request(http.MethodPatch, "/api/v1/games/missing", map[string]any{"comment": "x"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeGameNotFound, errorCode(t, rr))
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})
	alice := createPlayer(t, ts, "Alice")
	game := recordGame(t, ts, map[string]any{"winner_id": alice.ID})

	rr := ts.request(http.MethodDelete, "/api/v1/games/"+game.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+game.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/"+alice.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, decode[response.Player](t, rr).Aggregates.Wins)
}

func TestProfile(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})
	alice := createPlayer(t, ts, "Alice")
	recordGame(t, ts, map[string]any{"winner_id": alice.ID, "time": "02:00"})

	rr := ts.request(http.MethodGet, "/api/v1/players/"+alice.ID+"/profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	profile := decode[response.Profile](t, rr)

	assert.Equal(t, response.Stats{Wins: 1, GamesPlayed: 1, WinRate: 100}, profile.Stats)
	assert.Equal(t, "Apprenti Joueur", profile.Title)
	require.NotNil(t, profile.NextTitle)
	assert.Equal(t, 3, profile.NextTitle.Min)
	assert.Len(t, profile.Achievements, profile.AchievementsTotal)
	assert.GreaterOrEqual(t, profile.AchievementsEarned, 2)
	assert.Len(t, profile.Wins, 1)

	values := make([]string, len(profile.Badges))
	for i, b := range profile.Badges {
		values[i] = b.Badge.Value
		assert.Equal(t, 1, b.Count)
	}
	assert.Contains(t, values, "first-win")
	assert.Contains(t, values, "night-owl")

	rr = ts.request(http.MethodGet, "/api/v1/players/ghost/profile", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBadgeCatalog(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})

	rr := ts.request(http.MethodGet, "/api/v1/badges", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]response.Badge](t, rr), 41)

	rr = ts.request(http.MethodGet, "/api/v1/badges?category=strategie", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	for _, b := range decode[[]response.Badge](t, rr) {
		assert.Equal(t, "strategie", b.Category)
	}

	rr = ts.request(http.MethodGet, "/api/v1/badges?q=BLUFF", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	found := decode[[]response.Badge](t, rr)
	require.Len(t, found, 1)
	assert.Equal(t, "bluffer", found[0].Value)

	rr = ts.request(http.MethodGet, "/api/v1/badges?grouped=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, decode[[]response.CategoryGroup](t, rr))

	rr = ts.request(http.MethodGet, "/api/v1/badges?category=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/badges/hat-trick", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "hat-trick", decode[response.Badge](t, rr).Value)

	rr = ts.request(http.MethodGet, "/api/v1/badges/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeBadgeNotFound, errorCode(t, rr))
}

func TestReferenceData(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})

	rr := ts.request(http.MethodGet, "/api/v1/badge-categories", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]response.Category](t, rr), 9)

	rr = ts.request(http.MethodGet, "/api/v1/titles", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	ladder := decode[[]response.Title](t, rr)
	require.Len(t, ladder, 8)
	assert.Equal(t, 0, ladder[0].Min)

	rr = ts.request(http.MethodGet, "/api/v1/achievements", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]response.Achievement](t, rr), 34)

	rr = ts.request(http.MethodGet, "/api/v1/game-types", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]response.GameType](t, rr), 12)

	rr = ts.request(http.MethodGet, "/api/v1/moods", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]response.Mood](t, rr), 9)
}

func TestRollBadges(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})
	alice := createPlayer(t, ts, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/badges/roll", map[string]string{
		"winner_id": alice.ID,
		"time":      "06:15",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	roll := decode[response.RollResponse](t, rr)
	require.NotEmpty(t, roll.Badges)
	assert.Equal(t, "first-win", roll.Badges[0].Value)
	assert.Equal(t, "early-bird", roll.Badges[len(roll.Badges)-1].Value)

	// Previews are never recorded
	rr = ts.request(http.MethodGet, "/api/v1/games", nil)
	assert.Empty(t, decode[[]response.Game](t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/badges/roll", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeWinnerRequired, errorCode(t, rr))
}

func TestGroupViews(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})
	alice := createPlayer(t, ts, "Alice")
	bob := createPlayer(t, ts, "Bob")
	carol := createPlayer(t, ts, "Carol")
	createPlayer(t, ts, "Dave")

	recordGame(t, ts, map[string]any{"winner_id": bob.ID, "date": "2024-01-01", "place": "Le Bar"})
	recordGame(t, ts, map[string]any{"winner_id": alice.ID, "date": "2024-01-02", "place": "Chez Bob"})
	recordGame(t, ts, map[string]any{"winner_id": alice.ID, "date": "2024-01-03", "place": "Chez Bob"})
	recordGame(t, ts, map[string]any{"winner_id": carol.ID, "date": "2023-12-31"})

	rr := ts.request(http.MethodGet, "/api/v1/leaderboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	board := decode[[]response.Standing](t, rr)
	require.Len(t, board, 4)
	assert.Equal(t, alice.ID, board[0].Player.ID)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, 2, board[0].Streaks.Current)

	rr = ts.request(http.MethodGet, "/api/v1/podium", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]response.Standing](t, rr), 3)

	rr = ts.request(http.MethodGet, "/api/v1/overview", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	overview := decode[response.Overview](t, rr)
	assert.Equal(t, 4, overview.TotalGames)
	require.NotNil(t, overview.TopPlayerID)
	assert.Equal(t, alice.ID, *overview.TopPlayerID)
	assert.Equal(t, "Chez Bob", overview.FavoritePlace)
	assert.Equal(t, 2, overview.CurrentStreak.Streak)

	rr = ts.request(http.MethodGet, "/api/v1/places", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.ElementsMatch(t, []string{"Le Bar", "Chez Bob"}, decode[[]string](t, rr))
}

func TestRateLimitOnWrites(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{Enabled: true, Requests: 2, Window: time.Minute})

	createPlayer(t, ts, "Alice")
	createPlayer(t, ts, "Bob")

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": "Carol"})
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, apierr.CodeRateLimited, errorCode(t, rr))
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))

	// Reads are never limited
	for range 5 {
		rr = ts.request(http.MethodGet, "/api/v1/players", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestEventsRejectsUnknownTopic(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})

	rr := ts.request(http.MethodGet, "/api/v1/events?topic=lobbies", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}

func TestEventsStreamGameRecorded(t *testing.T) {
	ts := newTestServer(t, api.RateLimitConfig{})
	alice := createPlayer(t, ts, "Alice")

	srv := httptest.NewServer(ts.handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/events?topic=games")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reader := bufio.NewReader(resp.Body)
	readFrame := func() []string {
		var lines []string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimSuffix(line, "\n")
			if line == "" {
				return lines
			}
			lines = append(lines, line)
		}
	}
	assert.Equal(t, "event: connected", readFrame()[0])

	hub := ts.app.HubManager.GetHub("games")
	require.NotNil(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	game := recordGame(t, ts, map[string]any{"winner_id": alice.ID})

	frame := readFrame()
	require.Len(t, frame, 2)
	assert.Equal(t, "event: game_recorded", frame[0])
	assert.Contains(t, frame[1], `"game_id":"`+game.ID+`"`)
	assert.Contains(t, frame[1], `"first-win"`)
}
