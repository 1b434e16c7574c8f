package store

import (
	"context"

	"gastos/internal/core"
)

// Key is the single storage key every backend persists the entry list under.
// The persisted representation is always one JSON array of entries.
const Key = "gastos_api_entries_v1"

// Ports for outbound adapters.
type (
	// Store persists the whole entry collection under a single key.
	// There are no partial updates: Save replaces everything, last writer
	// wins. Load follows a fail-open policy: corrupt or unparseable
	// persisted data loads as an empty collection and is never surfaced
	// as an error.
	Store interface {
		Load(ctx context.Context) ([]core.Entry, error)
		Save(ctx context.Context, entries []core.Entry) error
	}
)
