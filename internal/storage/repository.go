package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gastos/internal/core"
	"gastos/internal/store"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements store.Store on a single-row key/value table.
// The persisted value is the same JSON array every other backend writes,
// so the one-key storage contract survives the backend swap.
type SQLiteRepository struct {
	db  *sql.DB
	key string
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db, key: store.Key}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load implements store.Store. An absent row loads as an empty collection,
// and so does an unparseable payload (fail-open, logged at warn).
func (r *SQLiteRepository) Load(ctx context.Context) ([]core.Entry, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM entry_store WHERE key = ?`, r.key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read entry payload: %w", err)
	}

	var entries []core.Entry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		slog.WarnContext(ctx, "Corrupt entry payload, starting empty",
			"key", r.key, "error", err)
		return nil, nil
	}

	return entries, nil
}

// Save implements store.Store by replacing the whole payload for the key.
func (r *SQLiteRepository) Save(ctx context.Context, entries []core.Entry) error {
	if entries == nil {
		entries = []core.Entry{}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO entry_store (key, payload, updated_at)
		 VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		r.key, string(raw))
	if err != nil {
		return fmt.Errorf("write entry payload: %w", err)
	}

	slog.DebugContext(ctx, "Entries saved to SQLite", "key", r.key, "count", len(entries))
	return nil
}
