package auth

import "sync"

// MockService is a mock implementation of the AuthService interface for testing.
// It is safe for concurrent use.
type MockService struct {
	mu sync.Mutex

	// Spies for method calls
	RegisterFunc       func(email, password, name string, role Role) (*User, error)
	LoginFunc          func(email, password string) (*Session, string, error)
	LogoutFunc         func()
	CurrentFunc        func() *Session
	ParseTokenFunc     func(token string) (*Session, error)
	ListUsersFunc      func() ([]User, error)
	DeactivateUserFunc func(id string) error

	// Call records
	RegisterCalls []struct {
		Email string
		Name  string
		Role  Role
	}
	LoginCalls          []string
	LogoutCalls         int
	ParseTokenCalls     []string
	DeactivateUserCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Register(email, password, name string, role Role) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RegisterCalls = append(m.RegisterCalls, struct {
		Email string
		Name  string
		Role  Role
	}{email, name, role})
	if m.RegisterFunc != nil {
		return m.RegisterFunc(email, password, name, role)
	}
	return &User{Email: email, Name: name, Role: role, Active: true}, nil
}

func (m *MockService) Login(email, password string) (*Session, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoginCalls = append(m.LoginCalls, email)
	if m.LoginFunc != nil {
		return m.LoginFunc(email, password)
	}
	return nil, "", ErrInvalidCredentials
}

func (m *MockService) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LogoutCalls++
	if m.LogoutFunc != nil {
		m.LogoutFunc()
	}
}

func (m *MockService) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CurrentFunc != nil {
		return m.CurrentFunc()
	}
	return nil
}

func (m *MockService) ParseToken(token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ParseTokenCalls = append(m.ParseTokenCalls, token)
	if m.ParseTokenFunc != nil {
		return m.ParseTokenFunc(token)
	}
	return nil, ErrInvalidCredentials
}

func (m *MockService) ListUsers() ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc()
	}
	return nil, nil
}

func (m *MockService) DeactivateUser(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeactivateUserCalls = append(m.DeactivateUserCalls, id)
	if m.DeactivateUserFunc != nil {
		return m.DeactivateUserFunc(id)
	}
	return nil
}
