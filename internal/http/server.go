package http

import (
	"net/http"

	"github.com/passabola/futstats/internal/auth"
	"github.com/passabola/futstats/internal/config"
	"github.com/passabola/futstats/internal/league"
	"github.com/passabola/futstats/internal/metrics"
	"github.com/passabola/futstats/internal/notifier"
	"github.com/passabola/futstats/internal/stats"
)

func NewServer(store league.LeagueStore, statsSvc stats.StatsService, authSvc auth.AuthService, metricsSvc metrics.Metrics, metricsHandler http.Handler, notifier notifier.Notifier, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Stats:          statsSvc,
		Auth:           authSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Notifier:       notifier,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Admin-only routes add requireRole(auth.RoleAdmin) on top of the
	// session middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("POST /register", Chain(s.RegisterHandler(), paramsMiddleware))
	s.Router.Handle("POST /login", Chain(s.LoginHandler(), paramsMiddleware))
	s.Router.Handle("POST /logout", Chain(s.LogoutHandler(), paramsMiddleware, s.sessionMiddleware))
	s.Router.Handle("GET /session", Chain(s.SessionHandler(), paramsMiddleware, s.sessionMiddleware))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("GET /players/search", Chain(s.SearchPlayersHandler(), paramsMiddleware))
	s.Router.Handle("GET /player", Chain(s.GetPlayerHandler(), paramsMiddleware))
	s.Router.Handle("GET /player/stats", Chain(s.PlayerStatsHandler(), paramsMiddleware))
	s.Router.Handle("GET /compare", Chain(s.CompareHandler(), paramsMiddleware))
	s.Router.Handle("GET /rankings/goals", Chain(s.RankingHandler(league.EventGoal), paramsMiddleware))
	s.Router.Handle("GET /rankings/assists", Chain(s.RankingHandler(league.EventAssist), paramsMiddleware))
	s.Router.Handle("GET /clubs", Chain(s.ListClubsHandler(), paramsMiddleware))
	s.Router.Handle("GET /championships", Chain(s.ListChampionshipsHandler(), paramsMiddleware))
	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), paramsMiddleware))

	s.Router.Handle("POST /clubs", Chain(s.CreateClubHandler(), paramsMiddleware, s.sessionMiddleware, requireRole(auth.RoleAdmin)))
	s.Router.Handle("POST /players", Chain(s.CreatePlayerHandler(), paramsMiddleware, s.sessionMiddleware, requireRole(auth.RoleAdmin)))
	s.Router.Handle("POST /championships", Chain(s.CreateChampionshipHandler(), paramsMiddleware, s.sessionMiddleware, requireRole(auth.RoleAdmin)))
	s.Router.Handle("POST /matches", Chain(s.CreateMatchHandler(), paramsMiddleware, s.sessionMiddleware, requireRole(auth.RoleAdmin)))
	s.Router.Handle("POST /matches/finalize", Chain(s.FinalizeMatchHandler(), paramsMiddleware, s.sessionMiddleware, requireRole(auth.RoleAdmin)))
	s.Router.Handle("POST /events", Chain(s.RecordEventHandler(), paramsMiddleware, s.sessionMiddleware, requireRole(auth.RoleAdmin)))
	s.Router.Handle("GET /users", Chain(s.ListUsersHandler(), paramsMiddleware, s.sessionMiddleware, requireRole(auth.RoleAdmin)))
	s.Router.Handle("GET /export", Chain(s.ExportHandler(), paramsMiddleware, s.sessionMiddleware, requireRole(auth.RoleAdmin)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
