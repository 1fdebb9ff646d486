// Package sqlite stores device items in a local SQLite file, the closest
// analogue of browser local storage for a single host.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eventSignup/internal/storage"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Storage struct {
	db *sql.DB
}

func Open(ctx context.Context, path string) (*Storage, error) {
	const op = "storage.sqlite.Open"

	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%s: storage path is required", op)
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: create storage dir: %w", op, err)
		}
	}

	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) GetItem(ctx context.Context, scope, key string) (string, bool, error) {
	const op = "storage.sqlite.GetItem"

	if strings.TrimSpace(scope) == "" || strings.TrimSpace(key) == "" {
		return "", false, storage.ErrInvalidItem
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM local_items WHERE scope = ? AND item_key = ?`,
		scope, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	return value, true, nil
}

func (s *Storage) SetItem(ctx context.Context, scope, key, value string) error {
	const op = "storage.sqlite.SetItem"

	if strings.TrimSpace(scope) == "" || strings.TrimSpace(key) == "" {
		return storage.ErrInvalidItem
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO local_items (scope, item_key, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(scope, item_key) DO UPDATE SET
		    value = excluded.value,
		    updated_at = excluded.updated_at`,
		scope, key, value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
