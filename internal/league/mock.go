package league

import "sync"

// MockStore is a mock implementation of the LeagueStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateClubFunc             func(params CreateClubParams) (*Club, error)
	CreatePlayerFunc           func(params CreatePlayerParams) (*Player, error)
	CreateChampionshipFunc     func(params CreateChampionshipParams) (*Championship, error)
	CreateMatchFunc            func(params CreateMatchParams) (*Match, error)
	RecordEventFunc            func(params RecordEventParams) (*Event, error)
	GetClubFunc                func(id string) (*Club, error)
	GetPlayerFunc              func(id string) (*Player, error)
	GetChampionshipFunc        func(id string) (*Championship, error)
	GetMatchFunc               func(id string) (*Match, error)
	SearchPlayersByNameFunc    func(term string) ([]Player, error)
	ListClubsFunc              func() ([]Club, error)
	ListPlayersFunc            func() ([]Player, error)
	ListChampionshipsFunc      func() ([]Championship, error)
	ListMatchesFunc            func() ([]Match, error)
	ListEventsFunc             func(matchID string) ([]Event, error)
	ListAllEventsFunc          func() ([]Event, error)
	DeactivateClubFunc         func(id string) error
	DeactivatePlayerFunc       func(id string) error
	DeactivateChampionshipFunc func(id string) error
	FinalizeMatchFunc          func(id string, homeScore, awayScore int) error

	// Call records
	CreateClubCalls          []CreateClubParams
	CreatePlayerCalls        []CreatePlayerParams
	CreateChampionshipCalls  []CreateChampionshipParams
	CreateMatchCalls         []CreateMatchParams
	RecordEventCalls         []RecordEventParams
	SearchPlayersByNameCalls []string
	FinalizeMatchCalls       []struct {
		ID        string
		HomeScore int
		AwayScore int
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateClubCalls = nil
	m.CreatePlayerCalls = nil
	m.CreateChampionshipCalls = nil
	m.CreateMatchCalls = nil
	m.RecordEventCalls = nil
	m.SearchPlayersByNameCalls = nil
	m.FinalizeMatchCalls = nil
}

func (m *MockStore) CreateClub(params CreateClubParams) (*Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateClubCalls = append(m.CreateClubCalls, params)
	if m.CreateClubFunc != nil {
		return m.CreateClubFunc(params)
	}
	return nil, nil
}

func (m *MockStore) CreatePlayer(params CreatePlayerParams) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, params)
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(params)
	}
	return nil, nil
}

func (m *MockStore) CreateChampionship(params CreateChampionshipParams) (*Championship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateChampionshipCalls = append(m.CreateChampionshipCalls, params)
	if m.CreateChampionshipFunc != nil {
		return m.CreateChampionshipFunc(params)
	}
	return nil, nil
}

func (m *MockStore) CreateMatch(params CreateMatchParams) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, params)
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(params)
	}
	return nil, nil
}

func (m *MockStore) RecordEvent(params RecordEventParams) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordEventCalls = append(m.RecordEventCalls, params)
	if m.RecordEventFunc != nil {
		return m.RecordEventFunc(params)
	}
	return nil, nil
}

func (m *MockStore) GetClub(id string) (*Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetClubFunc != nil {
		return m.GetClubFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetPlayer(id string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetChampionship(id string) (*Championship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetChampionshipFunc != nil {
		return m.GetChampionshipFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetMatch(id string) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) SearchPlayersByName(term string) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchPlayersByNameCalls = append(m.SearchPlayersByNameCalls, term)
	if m.SearchPlayersByNameFunc != nil {
		return m.SearchPlayersByNameFunc(term)
	}
	return nil, nil
}

func (m *MockStore) ListClubs() ([]Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListClubsFunc != nil {
		return m.ListClubsFunc()
	}
	return nil, nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) ListChampionships() ([]Championship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListChampionshipsFunc != nil {
		return m.ListChampionshipsFunc()
	}
	return nil, nil
}

func (m *MockStore) ListMatches() ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) ListEvents(matchID string) ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(matchID)
	}
	return nil, nil
}

func (m *MockStore) ListAllEvents() ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListAllEventsFunc != nil {
		return m.ListAllEventsFunc()
	}
	return nil, nil
}

func (m *MockStore) DeactivateClub(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeactivateClubFunc != nil {
		return m.DeactivateClubFunc(id)
	}
	return nil
}

func (m *MockStore) DeactivatePlayer(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeactivatePlayerFunc != nil {
		return m.DeactivatePlayerFunc(id)
	}
	return nil
}

func (m *MockStore) DeactivateChampionship(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeactivateChampionshipFunc != nil {
		return m.DeactivateChampionshipFunc(id)
	}
	return nil
}

func (m *MockStore) FinalizeMatch(id string, homeScore, awayScore int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FinalizeMatchCalls = append(m.FinalizeMatchCalls, struct {
		ID        string
		HomeScore int
		AwayScore int
	}{id, homeScore, awayScore})
	if m.FinalizeMatchFunc != nil {
		return m.FinalizeMatchFunc(id, homeScore, awayScore)
	}
	return nil
}
