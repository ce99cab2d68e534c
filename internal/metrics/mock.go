package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	RegistrationsCount     int
	LoginSuccessCount      int
	LoginFailureCount      int
	EventsRecordedCount    int
	StatsComputationsCount int
	RankingsServedCount    int
	SlackNotifSentCount    int
	SlackNotifFailedCount  int
	StartupTime            float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncRegistrations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RegistrationsCount++
}

func (m *Mock) IncLoginSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoginSuccessCount++
}

func (m *Mock) IncLoginFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoginFailureCount++
}

func (m *Mock) IncEventsRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventsRecordedCount++
}

func (m *Mock) IncStatsComputations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsComputationsCount++
}

func (m *Mock) IncRankingsServed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RankingsServedCount++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCount++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCount++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = duration
}
