package notifier

import "sync"

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	AnnounceGoalFunc   func(playerName, clubName string, minute int, dryRun bool) error
	AnnounceResultFunc func(homeClub, awayClub string, homeScore, awayScore int, dryRun bool) error

	// Call records
	AnnounceGoalCalls []struct {
		PlayerName string
		ClubName   string
		Minute     int
		DryRun     bool
	}
	AnnounceResultCalls []struct {
		HomeClub  string
		AwayClub  string
		HomeScore int
		AwayScore int
		DryRun    bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnnounceGoalCalls = nil
	m.AnnounceResultCalls = nil
}

func (m *Mock) AnnounceGoal(playerName, clubName string, minute int, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnnounceGoalCalls = append(m.AnnounceGoalCalls, struct {
		PlayerName string
		ClubName   string
		Minute     int
		DryRun     bool
	}{playerName, clubName, minute, dryRun})
	if m.AnnounceGoalFunc != nil {
		return m.AnnounceGoalFunc(playerName, clubName, minute, dryRun)
	}
	return nil
}

func (m *Mock) AnnounceResult(homeClub, awayClub string, homeScore, awayScore int, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnnounceResultCalls = append(m.AnnounceResultCalls, struct {
		HomeClub  string
		AwayClub  string
		HomeScore int
		AwayScore int
		DryRun    bool
	}{homeClub, awayClub, homeScore, awayScore, dryRun})
	if m.AnnounceResultFunc != nil {
		return m.AnnounceResultFunc(homeClub, awayClub, homeScore, awayScore, dryRun)
	}
	return nil
}
