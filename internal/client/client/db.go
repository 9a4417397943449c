package client

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/blogify-auth/internal/client/migrations"
	"github.com/dmitrijs2005/blogify-auth/internal/xdg"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite database at dsn and
// brings its schema up to date. dsn is a plain path, ":memory:", or a
// "file:" URI with query parameters. For on-disk databases the parent
// directory is created and the file is made private to the user.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	path := dbFilePath(dsn)
	if path != "" {
		if err := xdg.EnsureDir(filepath.Dir(path)); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session database: %w", err)
	}

	if path != "" {
		if err := os.Chmod(path, 0o600); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("restrict session database: %w", err)
		}
	}

	return db, nil
}

// dbFilePath returns the file behind dsn, or "" for in-memory databases.
func dbFilePath(dsn string) string {
	if dsn == "" || dsn == ":memory:" {
		return ""
	}
	if !strings.HasPrefix(dsn, "file:") {
		return dsn
	}

	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" {
		return ""
	}
	if v, err := url.ParseQuery(query); err == nil && v.Get("mode") == "memory" {
		return ""
	}
	if p, err := url.PathUnescape(path); err == nil {
		path = p
	}
	return path
}
