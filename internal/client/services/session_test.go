package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogify-auth/internal/client/client"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestService(db *sql.DB) *sessionService {
	return &sessionService{db: db, now: func() time.Time { return testNow }}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice@example.org",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("not-the-server-key"))
	require.NoError(t, err)
	return s
}

func readMeta(t *testing.T, db *sql.DB, key string) (string, bool) {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	require.NoError(t, err)
	return string(v), true
}

func TestToken_EmptyWhenLoggedOut(t *testing.T) {
	s := newTestService(setupDB(t))

	tok, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", tok)
	assert.False(t, s.Authenticated(context.Background()))
}

func TestSetToken_PersistsTokenAndTimestamp(t *testing.T) {
	db := setupDB(t)
	s := newTestService(db)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "abc"))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	savedAt, ok := readMeta(t, db, keySavedAt)
	require.True(t, ok)
	assert.Equal(t, "2026-03-01T12:00:00Z", savedAt)
}

func TestSetToken_RejectsEmpty(t *testing.T) {
	s := newTestService(setupDB(t))
	require.ErrorIs(t, s.SetToken(context.Background(), ""), ErrEmptyToken)
}

func TestClear_RemovesBothKeys(t *testing.T) {
	db := setupDB(t)
	s := newTestService(db)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "abc"))
	require.NoError(t, s.Clear(ctx))

	_, ok := readMeta(t, db, keyToken)
	assert.False(t, ok)
	_, ok = readMeta(t, db, keySavedAt)
	assert.False(t, ok)
	assert.False(t, s.Authenticated(ctx))

	require.NoError(t, s.Clear(ctx))
}

func TestAuthenticated(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "opaque token", token: "abc", want: true},
		{name: "jwt valid", token: signedToken(t, testNow.Add(time.Hour)), want: true},
		{name: "jwt expired", token: signedToken(t, testNow.Add(-time.Minute)), want: false},
		{name: "jwt expiring now", token: signedToken(t, testNow), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(setupDB(t))
			require.NoError(t, s.SetToken(context.Background(), tt.token))
			assert.Equal(t, tt.want, s.Authenticated(context.Background()))
		})
	}
}

func TestAuthenticated_JWTWithoutExp(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "bob"}).SignedString([]byte("k"))
	require.NoError(t, err)

	s := newTestService(setupDB(t))
	require.NoError(t, s.SetToken(context.Background(), tok))
	assert.True(t, s.Authenticated(context.Background()))
}

func TestSetToken_RollsBackWhenSecondWriteFails(t *testing.T) {
	errDriver := errors.New("database is locked")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO metadata`).WithArgs(keyToken, []byte("abc")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO metadata`).WithArgs(keySavedAt, sqlmock.AnyArg()).WillReturnError(errDriver)
	mock.ExpectRollback()

	err = newTestService(db).SetToken(context.Background(), "abc")

	require.ErrorIs(t, err, errDriver)
	assert.Contains(t, err.Error(), "save token")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticated_FalseOnReadError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery(`SELECT value FROM metadata`).WillReturnError(errors.New("no such table: metadata"))

	assert.False(t, newTestService(db).Authenticated(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
