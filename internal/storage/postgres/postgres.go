package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"eventSignup/internal/config"
	"eventSignup/internal/storage"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Storage struct {
	DB *sql.DB
}

func DSN(dbCfg *config.Database) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)
}

func InitDB(ctx context.Context, dbCfg *config.Database) (*Storage, error) {
	return Open(ctx, DSN(dbCfg))
}

func Open(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to prepare migrations: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) GetItem(ctx context.Context, scope, key string) (string, bool, error) {
	if strings.TrimSpace(scope) == "" || strings.TrimSpace(key) == "" {
		return "", false, storage.ErrInvalidItem
	}

	query := `
		SELECT value
		FROM local_items
		WHERE scope = $1 AND item_key = $2`

	var value string
	err := s.DB.QueryRowContext(ctx, query, scope, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get item: %w", err)
	}

	return value, true, nil
}

func (s *Storage) SetItem(ctx context.Context, scope, key, value string) error {
	if strings.TrimSpace(scope) == "" || strings.TrimSpace(key) == "" {
		return storage.ErrInvalidItem
	}

	query := `
		INSERT INTO local_items (scope, item_key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (scope, item_key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := s.DB.ExecContext(ctx, query, scope, key, value); err != nil {
		return fmt.Errorf("failed to set item: %w", err)
	}

	return nil
}
