package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/passabola/futstats/internal/auth"
	"github.com/passabola/futstats/internal/config"
	"github.com/passabola/futstats/internal/database"
	"github.com/passabola/futstats/internal/league"
	"github.com/passabola/futstats/internal/metrics"
	"github.com/passabola/futstats/internal/notifier"
	"github.com/passabola/futstats/internal/seed"
	"github.com/passabola/futstats/internal/stats"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// setupTestServer initializes a server against a seeded test database.
func setupTestServer(t *testing.T, mockNotifier notifier.Notifier) (*Server, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, seed.Seed(db))

	store := league.New(db)
	statsSvc := stats.New(db)
	authSvc := auth.New(db, "test-secret", time.Hour)
	cfg := config.Config{Port: "8080"}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)

	server := NewServer(store, statsSvc, authSvc, metricsSvc, metricsHandler, mockNotifier, cfg)

	return server, dbTeardown
}

// loginAs logs a seeded user in through the handler and returns the bearer token.
func loginAs(t *testing.T, server *Server, email, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthCheckHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestLoginHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	t.Run("succeeds with seeded credentials", func(t *testing.T) {
		token := loginAs(t, server, "admin@passabola.com", "admin123")
		assert.NotEmpty(t, token)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "admin@passabola.com", "password": "nope"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown email gets the same response as a wrong password", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "ghost@passabola.com", "password": "admin123"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid email or password")
	})
}

func TestRegisterHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	t.Run("creates a regular user by default", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"email":    "nova@passabola.com",
			"password": "segredo",
			"name":     "Nova Torcedora",
		})
		req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var user auth.User
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&user))
		assert.Equal(t, auth.RoleRegular, user.Role)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"email":    "admin@passabola.com",
			"password": "outra",
			"name":     "Impostora",
		})
		req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAdminGuard(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	clubBody, _ := json.Marshal(league.CreateClubParams{Name: "Grêmio Feminino", City: "Porto Alegre"})

	t.Run("rejects requests without a token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/clubs", bytes.NewReader(clubBody))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects a regular user", func(t *testing.T) {
		token := loginAs(t, server, "usuario@teste.com", "user123")
		req := httptest.NewRequest("POST", "/clubs", bytes.NewReader(clubBody))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("allows an admin", func(t *testing.T) {
		token := loginAs(t, server, "admin@passabola.com", "admin123")
		req := httptest.NewRequest("POST", "/clubs", bytes.NewReader(clubBody))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		token := loginAs(t, server, "admin@passabola.com", "admin123")
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSearchPlayersHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	req := httptest.NewRequest("GET", "/players/search?q=MAR", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var players []league.Player
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&players))
	require.Len(t, players, 1)
	assert.Equal(t, "Marta Vieira da Silva", players[0].Name)
}

func TestRankingHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	t.Run("serves the goal ranking in order", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rankings/goals", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var entries []stats.RankingEntry
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&entries))
		require.Len(t, entries, 3)
		assert.Equal(t, "jog_001", entries[0].PlayerID)
		assert.Equal(t, 1, entries[0].Count)
	})

	t.Run("honors the limit parameter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rankings/goals?limit=1", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var entries []stats.RankingEntry
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&entries))
		assert.Len(t, entries, 1)
	})

	t.Run("falls back to the default on garbage limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rankings/assists?limit=banana", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var entries []stats.RankingEntry
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&entries))
		assert.Len(t, entries, 3)
	})
}

func TestRecordEventHandler(t *testing.T) {
	mockNotifier := notifier.NewMock()
	server, teardown := setupTestServer(t, mockNotifier)
	defer teardown()
	token := loginAs(t, server, "admin@passabola.com", "admin123")

	t.Run("records a goal and announces it", func(t *testing.T) {
		body, _ := json.Marshal(league.RecordEventParams{
			MatchID:  "part_001",
			PlayerID: "jog_002",
			Kind:     league.EventGoal,
			Minute:   88,
		})
		req := httptest.NewRequest("POST", "/events", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Len(t, mockNotifier.AnnounceGoalCalls, 1)
		assert.Equal(t, "Debinha", mockNotifier.AnnounceGoalCalls[0].PlayerName)
		assert.Equal(t, 88, mockNotifier.AnnounceGoalCalls[0].Minute)
	})

	t.Run("rejects an unknown event kind", func(t *testing.T) {
		body, _ := json.Marshal(league.RecordEventParams{
			MatchID:  "part_001",
			PlayerID: "jog_002",
			Kind:     "own_goal",
			Minute:   90,
		})
		req := httptest.NewRequest("POST", "/events", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("dry run keeps the announcement off the wire", func(t *testing.T) {
		before := len(mockNotifier.AnnounceGoalCalls)
		body, _ := json.Marshal(league.RecordEventParams{
			MatchID:  "part_001",
			PlayerID: "jog_001",
			Kind:     league.EventGoal,
			Minute:   90,
		})
		req := httptest.NewRequest("POST", "/events?dry_run=true", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Len(t, mockNotifier.AnnounceGoalCalls, before+1)
		assert.True(t, mockNotifier.AnnounceGoalCalls[before].DryRun)
	})
}

func TestFinalizeMatchHandler(t *testing.T) {
	mockNotifier := notifier.NewMock()
	server, teardown := setupTestServer(t, mockNotifier)
	defer teardown()
	token := loginAs(t, server, "admin@passabola.com", "admin123")

	matchBody, _ := json.Marshal(league.CreateMatchParams{
		HomeClubID:     "clube_002",
		AwayClubID:     "clube_003",
		ChampionshipID: "camp_001",
		Date:           "2024-04-01",
	})
	req := httptest.NewRequest("POST", "/matches", bytes.NewReader(matchBody))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)
	var match league.Match
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&match))

	body, _ := json.Marshal(map[string]any{"id": match.ID, "home_score": 3, "away_score": 0})
	req = httptest.NewRequest("POST", "/matches/finalize", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, mockNotifier.AnnounceResultCalls, 1)
	assert.Equal(t, "Flamengo Feminino", mockNotifier.AnnounceResultCalls[0].HomeClub)
	assert.Equal(t, 3, mockNotifier.AnnounceResultCalls[0].HomeScore)

	finalized, err := server.Store.GetMatch(match.ID)
	require.NoError(t, err)
	assert.True(t, finalized.Finalized)
}

func TestFinalizeMatchHandlerReadBackFailure(t *testing.T) {
	mockStore := league.NewMock()
	mockStore.GetMatchFunc = func(id string) (*league.Match, error) {
		return nil, errors.New("store offline")
	}
	mockAuth := auth.NewMock()
	mockAuth.ParseTokenFunc = func(token string) (*auth.Session, error) {
		return &auth.Session{UserID: "admin_001", Role: auth.RoleAdmin}, nil
	}
	mockNotifier := notifier.NewMock()

	reg := prometheus.NewRegistry()
	server := NewServer(mockStore, stats.NewMock(), mockAuth, metrics.NewService(reg), metrics.NewMetricsHandler(reg), mockNotifier, config.Config{})

	body, _ := json.Marshal(map[string]any{"id": "m1", "home_score": 1, "away_score": 0})
	req := httptest.NewRequest("POST", "/matches/finalize", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	// Finalization succeeded; only the read-back for the response failed.
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, mockStore.FinalizeMatchCalls, 1)
	assert.NotContains(t, rr.Body.String(), "null")
	assert.Contains(t, rr.Body.String(), "Match finalized.")
	assert.Empty(t, mockNotifier.AnnounceResultCalls)
}

func TestHandlerStoreFailures(t *testing.T) {
	mockStore := league.NewMock()
	mockStore.ListPlayersFunc = func() ([]league.Player, error) {
		return nil, errors.New("store offline")
	}
	mockStats := stats.NewMock()
	mockStats.RankByGoalsFunc = func(limit int) ([]stats.RankingEntry, error) {
		return nil, errors.New("store offline")
	}
	mockAuth := auth.NewMock()

	reg := prometheus.NewRegistry()
	server := NewServer(mockStore, mockStats, mockAuth, metrics.NewService(reg), metrics.NewMetricsHandler(reg), notifier.NewMock(), config.Config{})

	t.Run("player listing failure maps to 500", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/players", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("ranking failure maps to 500 and keeps the default limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rankings/goals", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		require.Len(t, mockStats.RankByGoalsCalls, 1)
		assert.Equal(t, 10, mockStats.RankByGoalsCalls[0])
	})
}

func TestExportHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()
	token := loginAs(t, server, "admin@passabola.com", "admin123")

	req := httptest.NewRequest("GET", "/export", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/msgpack", rr.Header().Get("Content-Type"))

	var export struct {
		Players []league.Player `msgpack:"players"`
		Events  []league.Event  `msgpack:"events"`
	}
	require.NoError(t, msgpack.NewDecoder(rr.Body).Decode(&export))
	assert.Len(t, export.Players, 3)
	assert.Len(t, export.Events, 4)
}
