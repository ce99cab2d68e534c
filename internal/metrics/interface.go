package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRegistrations()
	IncLoginSuccess()
	IncLoginFailure()
	IncEventsRecorded()
	IncStatsComputations()
	IncRankingsServed()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
