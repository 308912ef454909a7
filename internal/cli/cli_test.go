package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_DecodesSuccess(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"p1","name":"Alice","emoji":"🦊","aggregates":{"wins":2,"current_streak":1,"max_streak":2}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)

	var p Player
	require.NoError(t, c.Post(context.Background(), apiPath("players"), map[string]string{"name": "Alice"}, &p))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/players", gotPath)
	assert.JSONEq(t, `{"name":"Alice"}`, gotBody)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 2, p.Aggregates.Wins)

	require.NoError(t, c.Get(context.Background(), apiPath("games"), map[string][]string{"winner": {"p1"}}, nil))
	assert.Equal(t, "winner=p1", gotQuery)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"PLAYER_NOT_FOUND","message":"Player not found"}}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Get(context.Background(), apiPath("players", "nope"), nil, &Player{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "PLAYER_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Player not found (PLAYER_NOT_FOUND)", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestClient_PlainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Delete(context.Background(), apiPath("games", "g1"))
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: boom", err.Error())
	assert.False(t, IsNotFound(err))
}

func TestAPIPath(t *testing.T) {
	assert.Equal(t, "/api/v1/players/a%2Fb/profile", apiPath("players", "a/b", "profile"))
	assert.Equal(t, "/api/v1", apiPath())
}

func TestReadEvents(t *testing.T) {
	stream := strings.Join([]string{
		"event: connected",
		`data: {"topic":"games"}`,
		"",
		": keepalive",
		"",
		"event: game_recorded",
		"data: line one",
		"data: line two",
		"",
		"data: orphan",
		"",
	}, "\n")

	type evt struct{ name, data string }
	var got []evt
	err := readEvents(strings.NewReader(stream), func(event, data string) {
		got = append(got, evt{event, data})
	})
	require.NoError(t, err)

	assert.Equal(t, []evt{
		{"connected", `{"topic":"games"}`},
		{"game_recorded", "line one\nline two"},
	}, got)
}

func TestPrintEvent_JSON(t *testing.T) {
	var buf bytes.Buffer
	printEvent(&buf, "game_deleted", `{"game_id":"g1"}`, true)

	var evt SSEEvent
	require.NoError(t, json.Unmarshal(buf.Bytes(), &evt))
	assert.Equal(t, "game_deleted", evt.Event)
	assert.Equal(t, `{"game_id":"g1"}`, evt.Data)
}

func TestOutput_Text(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print([]Standing{
		{Rank: 1, Player: Player{Name: "Alice", Emoji: "🦊"}, Stats: Stats{Wins: 3, WinRate: 75}, Title: "Joueur Régulier"},
	})
	assert.Contains(t, buf.String(), "Alice")
	assert.Contains(t, buf.String(), "75%")
	assert.Contains(t, buf.String(), "Joueur Régulier")

	buf.Reset()
	out.Print([]Game{})
	assert.Equal(t, "No games\n", buf.String())

	buf.Reset()
	out.PrintMessage("Deleted game g1")
	assert.Equal(t, "Deleted game g1\n", buf.String())
}

func TestOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("json", &buf).PrintMessage("done")
	assert.JSONEq(t, `{"message":"done"}`, buf.String())
}

func TestDefaultConfig_Env(t *testing.T) {
	t.Setenv("CARDNIGHT_SERVER", "http://ledger.local:9000")
	t.Setenv("CARDNIGHT_OUTPUT", "")

	c := DefaultConfig()
	assert.Equal(t, "http://ledger.local:9000", c.ServerURL)
	assert.Equal(t, "text", c.Output)
}
