package stats

import "sync"

// MockService is a mock implementation of the StatsService interface for testing.
// It is safe for concurrent use.
type MockService struct {
	mu sync.Mutex

	// Spies for method calls
	PlayerStatsFunc   func(playerID string) (*PlayerStats, error)
	RankByGoalsFunc   func(limit int) ([]RankingEntry, error)
	RankByAssistsFunc func(limit int) ([]RankingEntry, error)
	CompareFunc       func(playerA, playerB string) (*Comparison, error)

	// Call records
	PlayerStatsCalls   []string
	RankByGoalsCalls   []int
	RankByAssistsCalls []int
	CompareCalls       []struct{ A, B string }
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) PlayerStats(playerID string) (*PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayerStatsCalls = append(m.PlayerStatsCalls, playerID)
	if m.PlayerStatsFunc != nil {
		return m.PlayerStatsFunc(playerID)
	}
	return &PlayerStats{PlayerID: playerID}, nil
}

func (m *MockService) RankByGoals(limit int) ([]RankingEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RankByGoalsCalls = append(m.RankByGoalsCalls, limit)
	if m.RankByGoalsFunc != nil {
		return m.RankByGoalsFunc(limit)
	}
	return nil, nil
}

func (m *MockService) RankByAssists(limit int) ([]RankingEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RankByAssistsCalls = append(m.RankByAssistsCalls, limit)
	if m.RankByAssistsFunc != nil {
		return m.RankByAssistsFunc(limit)
	}
	return nil, nil
}

func (m *MockService) Compare(playerA, playerB string) (*Comparison, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CompareCalls = append(m.CompareCalls, struct{ A, B string }{playerA, playerB})
	if m.CompareFunc != nil {
		return m.CompareFunc(playerA, playerB)
	}
	return nil, nil
}
