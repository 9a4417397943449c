package client

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "session.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.PingContext(ctx))
	assert.True(t, tableExists(t, db, "goose_db_version"))
	assert.True(t, tableExists(t, db, "metadata"))

	info, err := os.Stat(dsn)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db), "second run must be a no-op")
	assert.True(t, tableExists(t, db, "metadata"))
}

func TestInitDatabase_InMemory(t *testing.T) {
	db, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "metadata"))
}

func TestInitDatabase_FileURI(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	db, err := InitDatabase(ctx, "file:"+path+"?_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "metadata"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	_, err = os.Stat("file:" + filepath.Dir(path))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDBFilePath(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: ":memory:", want: ""},
		{dsn: "", want: ""},
		{dsn: "/var/lib/blogify/session.db", want: "/var/lib/blogify/session.db"},
		{dsn: "file:/tmp/s.db?_pragma=busy_timeout(5000)", want: "/tmp/s.db"},
		{dsn: "file:/tmp/my%20dir/s.db", want: "/tmp/my dir/s.db"},
		{dsn: "file:sessions?mode=memory&cache=shared", want: ""},
		{dsn: "file::memory:?cache=shared", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, dbFilePath(tt.dsn))
		})
	}
}

func TestInitDatabase_SharedMemoryURI(t *testing.T) {
	db, err := InitDatabase(context.Background(), "file:blogify_sessions?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "metadata"))
	_, err = os.Stat("blogify_sessions")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
