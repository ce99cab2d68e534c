package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// service validates credentials against the users table and tracks the single
// process-wide session. The session starts anonymous and is only mutated by
// Login and Logout.
type service struct {
	db       *sql.DB
	secret   []byte
	tokenTTL time.Duration

	mu      sync.RWMutex
	current *Session
}

// New creates a new AuthService.
func New(db *sql.DB, tokenSecret string, tokenTTL time.Duration) AuthService {
	return &service{
		db:       db,
		secret:   []byte(tokenSecret),
		tokenTTL: tokenTTL,
	}
}

// HashPassword returns the hex-encoded sha256 digest of a password. Exported
// for the seeder, which stores credentials for the demo accounts.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *service) Register(email, password, name string, role Role) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, errors.New("email is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}
	if role == "" {
		role = RoleRegular
	}
	if !role.Valid() {
		return nil, fmt.Errorf("unrecognized role %q", role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", email).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		Active:       true,
		PasswordHash: HashPassword(password),
	}
	_, err = s.db.Exec(`
		INSERT INTO users (id, email, password_hash, name, role, active)
		VALUES (?, ?, ?, ?, ?, 1)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	log.Info("Registered user", "userID", user.ID, "role", user.Role)
	return user, nil
}

func (s *service) Login(email, password string) (*Session, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	var user User
	err := s.db.QueryRow(`
		SELECT id, email, password_hash, name, role, active
		FROM users WHERE email = ?`, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Role, &user.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Same outcome as a wrong password, on purpose.
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	digest := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(user.PasswordHash)) != 1 {
		return nil, "", ErrInvalidCredentials
	}
	if !user.Active {
		return nil, "", ErrInvalidCredentials
	}

	token, err := generateToken(&user, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	session := &Session{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}
	// A login while already authenticated simply replaces the session.
	s.current = session
	log.Info("User logged in", "userID", user.ID, "role", user.Role)

	copied := *session
	return &copied, token, nil
}

func (s *service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	log.Debug("Session cleared")
}

func (s *service) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

func (s *service) ParseToken(token string) (*Session, error) {
	return parseToken(token, s.secret)
}

// ListUsers returns every account, active or not, in insertion order.
func (s *service) ListUsers() ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, email, password_hash, name, role, active
		FROM users ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Active); err != nil {
			log.Error("Failed to scan user row", "error", err)
			continue
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *service) DeactivateUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE users SET active = 0 WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("user %s: %w", id, ErrUserNotFound)
	}
	log.Info("Deactivated user", "userID", id)
	return nil
}
