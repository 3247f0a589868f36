package serviceImp

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kitsukisaiseikyo-byte/farm-manager/database"
	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/repositoryImp"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/service"
)

const (
	testUser   = "admin"
	testPass   = "farm2026"
	testSecret = "test-secret"
)

func setup(t *testing.T) (service.AuthService, *gorm.DB, *clockwork.FakeClock) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	svc := NewAuthService(repositoryImp.New(db), Options{Secret: testSecret, TTL: time.Hour, Clock: clock},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, svc.EnsureDefaultUser(testUser, testPass))
	return svc, db, clock
}

func TestEnsureDefaultUser_SeedsOnce(t *testing.T) {
	svc, db, _ := setup(t)

	require.NoError(t, svc.EnsureDefaultUser("other", "pw"))

	var users []entities.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, testUser, users[0].Username)
	assert.NotEqual(t, testPass, users[0].PasswordHash)
}

func TestLogin_Success(t *testing.T) {
	svc, _, clock := setup(t)

	sess, err := svc.Login(testUser, testPass)
	require.NoError(t, err)

	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, testUser, sess.User.Username)
	assert.Equal(t, clock.Now().Add(time.Hour), sess.ExpiresAt)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := setup(t)

	cases := []struct{ user, pass string }{
		{testUser, "wrong"},
		{"nobody", testPass},
		{"nobody", "wrong"},
		{"", ""},
		{"ADMIN", testPass},
	}
	for _, c := range cases {
		sess, err := svc.Login(c.user, c.pass)
		assert.Nil(t, sess)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "%s/%s", c.user, c.pass)
		assert.Equal(t, ErrInvalidCredentials.Error(), err.Error())
	}
}

func TestLogin_ConcurrentSessionsAllowed(t *testing.T) {
	svc, _, _ := setup(t)

	a, err := svc.Login(testUser, testPass)
	require.NoError(t, err)
	b, err := svc.Login(testUser, testPass)
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)

	for _, tok := range []string{a.Token, b.Token} {
		u, err := svc.Authenticate(tok)
		require.NoError(t, err)
		assert.Equal(t, testUser, u.Username)
	}
}

func TestAuthenticate_Expired(t *testing.T) {
	svc, _, clock := setup(t)
	sess, err := svc.Login(testUser, testPass)
	require.NoError(t, err)

	clock.Advance(time.Hour + time.Second)

	_, err = svc.Authenticate(sess.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthenticate_Rejects(t *testing.T) {
	svc, _, clock := setup(t)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Username: testUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	ghost, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "999",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"wrong key":    forged,
		"unknown user": ghost,
	} {
		_, err := svc.Authenticate(tok)
		assert.ErrorIs(t, err, ErrInvalidSession, name)
	}
}
