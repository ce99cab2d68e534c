package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "futstats_registrations_total",
			Help: "The total number of user registrations.",
		}),
		LoginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "futstats_logins_success_total",
			Help: "The total number of successful logins.",
		}),
		LoginFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "futstats_logins_failure_total",
			Help: "The total number of rejected logins.",
		}),
		EventsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "futstats_events_recorded_total",
			Help: "The total number of match events appended to the log.",
		}),
		StatsComputations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "futstats_stats_computations_total",
			Help: "The total number of per-player stat aggregations computed.",
		}),
		RankingsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "futstats_rankings_served_total",
			Help: "The total number of ranking requests served.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "futstats_slack_notifications_sent_total",
			Help: "The total number of Slack announcements successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "futstats_slack_notifications_failed_total",
			Help: "The total number of Slack announcements that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "futstats_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Registrations,
		s.LoginSuccess,
		s.LoginFailure,
		s.EventsRecorded,
		s.StatsComputations,
		s.RankingsServed,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRegistrations() {
	s.Registrations.Inc()
}

func (s *Service) IncLoginSuccess() {
	s.LoginSuccess.Inc()
}

func (s *Service) IncLoginFailure() {
	s.LoginFailure.Inc()
}

func (s *Service) IncEventsRecorded() {
	s.EventsRecorded.Inc()
}

func (s *Service) IncStatsComputations() {
	s.StatsComputations.Inc()
}

func (s *Service) IncRankingsServed() {
	s.RankingsServed.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
