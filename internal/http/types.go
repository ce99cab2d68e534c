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

type Server struct {
	Store          league.LeagueStore
	Stats          stats.StatsService
	Auth           auth.AuthService
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Notifier       notifier.Notifier
	Cfg            config.Config
	Router         *http.ServeMux
}
