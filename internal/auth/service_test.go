package auth_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/passabola/futstats/internal/auth"
	"github.com/passabola/futstats/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (auth.AuthService, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:")
	require.NoError(t, err)

	svc := auth.New(db, "test-secret", time.Hour)
	return svc, db, dbTeardown
}

func countUsers(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n))
	return n
}

func TestRegister(t *testing.T) {
	svc, db, teardown := setupTestDB(t)
	defer teardown()

	user, err := svc.Register("ana@clube.com", "segredo", "Ana", "")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleRegular, user.Role, "role defaults to regular")
	assert.True(t, user.Active)
	assert.NotEmpty(t, user.ID)

	t.Run("duplicate email leaves collection unchanged", func(t *testing.T) {
		before := countUsers(t, db)
		_, err := svc.Register("ana@clube.com", "outra", "Outra Ana", "")
		assert.ErrorIs(t, err, auth.ErrDuplicateEmail)
		assert.Equal(t, before, countUsers(t, db))
	})

	t.Run("email comparison is case-insensitive", func(t *testing.T) {
		_, err := svc.Register("ANA@clube.com", "x", "Ana", "")
		assert.ErrorIs(t, err, auth.ErrDuplicateEmail)
	})

	t.Run("unrecognized role is rejected", func(t *testing.T) {
		_, err := svc.Register("b@clube.com", "x", "B", auth.Role("superuser"))
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := svc.Register("ana@clube.com", "segredo", "Ana", auth.RoleAdmin)
	require.NoError(t, err)

	t.Run("succeeds with matching credentials", func(t *testing.T) {
		session, token, err := svc.Login("ana@clube.com", "segredo")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, auth.RoleAdmin, session.Role)
		assert.NotEmpty(t, token)
		assert.Equal(t, session.UserID, svc.Current().UserID)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, _, err := svc.Login("ana@clube.com", "errada")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email fails with the same error", func(t *testing.T) {
		_, _, errUnknown := svc.Login("ninguem@clube.com", "segredo")
		_, _, errWrongPass := svc.Login("ana@clube.com", "errada")
		assert.ErrorIs(t, errUnknown, auth.ErrInvalidCredentials)
		assert.Equal(t, errWrongPass, errUnknown, "failure must not disclose whether the email exists")
	})

	t.Run("failed login leaves existing session untouched", func(t *testing.T) {
		session, _, err := svc.Login("ana@clube.com", "segredo")
		require.NoError(t, err)

		_, _, err = svc.Login("ana@clube.com", "errada")
		require.Error(t, err)
		current := svc.Current()
		require.NotNil(t, current)
		assert.Equal(t, session.UserID, current.UserID)
	})
}

func TestLoginDeactivatedUser(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	user, err := svc.Register("ana@clube.com", "segredo", "Ana", "")
	require.NoError(t, err)
	require.NoError(t, svc.DeactivateUser(user.ID))

	_, _, err = svc.Login("ana@clube.com", "segredo")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "correct password must not log in a deactivated user")
}

func TestLogout(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := svc.Register("ana@clube.com", "segredo", "Ana", "")
	require.NoError(t, err)
	_, _, err = svc.Login("ana@clube.com", "segredo")
	require.NoError(t, err)
	require.NotNil(t, svc.Current())

	svc.Logout()
	assert.Nil(t, svc.Current())

	// Idempotent.
	svc.Logout()
	assert.Nil(t, svc.Current())
}

func TestSecondLoginReplacesSession(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := svc.Register("ana@clube.com", "segredo", "Ana", "")
	require.NoError(t, err)
	_, err = svc.Register("bia@clube.com", "outra", "Bia", "")
	require.NoError(t, err)

	_, _, err = svc.Login("ana@clube.com", "segredo")
	require.NoError(t, err)
	session, _, err := svc.Login("bia@clube.com", "outra")
	require.NoError(t, err)

	assert.Equal(t, session.UserID, svc.Current().UserID)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := svc.Register("ana@clube.com", "segredo", "Ana", auth.RoleAdmin)
	require.NoError(t, err)
	session, token, err := svc.Login("ana@clube.com", "segredo")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, parsed.UserID)
	assert.Equal(t, session.Email, parsed.Email)
	assert.Equal(t, auth.RoleAdmin, parsed.Role)

	t.Run("tampered token is rejected", func(t *testing.T) {
		_, err := svc.ParseToken(token + "x")
		assert.Error(t, err)
	})
}

func TestListUsersIncludesDeactivated(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	u1, err := svc.Register("ana@clube.com", "x", "Ana", "")
	require.NoError(t, err)
	_, err = svc.Register("bia@clube.com", "x", "Bia", "")
	require.NoError(t, err)
	require.NoError(t, svc.DeactivateUser(u1.ID))

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ana@clube.com", users[0].Email)
	assert.False(t, users[0].Active)
	assert.True(t, users[1].Active)
}
