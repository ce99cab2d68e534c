package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Registrations      prometheus.Counter
	LoginSuccess       prometheus.Counter
	LoginFailure       prometheus.Counter
	EventsRecorded     prometheus.Counter
	StatsComputations  prometheus.Counter
	RankingsServed     prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
