package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gastos/internal/core"
)

// Store persists the entry collection as one JSON file, the durable
// equivalent of a single browser storage key.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the whole collection from disk. A missing file and corrupt or
// unparseable content both load as an empty collection; the corruption case
// is logged at warn and deliberately not surfaced.
func (s *Store) Load(ctx context.Context) ([]core.Entry, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "Failed to read entry file, starting empty",
				"path", s.path, "error", err)
		}
		return nil, nil
	}

	var entries []core.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.WarnContext(ctx, "Corrupt entry file, starting empty",
			"path", s.path, "error", err)
		return nil, nil
	}

	return entries, nil
}

// Save replaces the persisted collection. The write goes through a temp file
// and a rename so a crash mid-write never leaves a half-written array behind.
func (s *Store) Save(ctx context.Context, entries []core.Entry) error {
	if entries == nil {
		entries = []core.Entry{}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".gastos-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write entries: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace entry file: %w", err)
	}

	slog.DebugContext(ctx, "Entries saved to file", "path", s.path, "count", len(entries))
	return nil
}
