// Package api exposes the mock expense API: five operations that validate
// input, run a load-modify-save cycle against the configured store and
// answer with a uniform envelope. There is no transport; callers invoke the
// operations directly, exactly as the contract they simulate would behave
// over the wire.
package api

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gastos/internal/core"
	"gastos/internal/log"
	"gastos/internal/store"
)

// ListParams are the optional, conjunctive list filters. Type and CardBrand
// match exactly ("all" and "" both mean unfiltered), Q is a case-insensitive
// substring match on the description, From and To are inclusive createdAt
// bounds. An unparseable bound is ignored rather than rejected.
type ListParams struct {
	Type      string `json:"type,omitempty"`
	CardBrand string `json:"cardBrand,omitempty"`
	Q         string `json:"q,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
}

// DeleteResult confirms which entry a delete removed.
type DeleteResult struct {
	ID string `json:"id"`
}

// SeedResult reports how many demo entries a seed call added.
type SeedResult struct {
	Seeded int `json:"seeded"`
}

// API is the facade over validator and store. It never caches: every
// operation re-reads the collection from the store before using it, so
// swapping the store for a shared backend later cannot introduce stale
// reads. The load-modify-save cycle itself is still a read-modify-write
// race under concurrent writers; single-writer use is assumed.
type API struct {
	store  store.Store
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

func New(st store.Store, logger *log.Logger) *API {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &API{
		store:  st,
		logger: logger.WithComponent(log.ComponentAPI),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// CreateEntry validates the request, assigns id and timestamp, prepends the
// entry to the collection and persists it. A validation failure leaves the
// store untouched.
func (a *API) CreateEntry(ctx context.Context, in CreateEntryInput) Response[core.Entry] {
	entry, err := normalizeEntry(in)
	if err != nil {
		a.logger.Debug("Entry rejected", log.FieldOperation, log.OpCreate, log.FieldError, err)
		return fail[core.Entry](errorFor(err))
	}

	entry.ID = a.newID()
	entry.CreatedAt = a.now()

	entries := a.loadEntries(ctx)
	entries = append([]core.Entry{entry}, entries...)
	if err := a.store.Save(ctx, entries); err != nil {
		a.logger.Error("Failed to persist entries",
			log.FieldOperation, log.OpCreate, log.FieldError, err)
		return fail[core.Entry](errorFor(err))
	}

	a.logger.Info("Entry created",
		log.FieldEntryID, entry.ID,
		log.FieldEntryType, entry.Type,
		log.FieldAmount, entry.Amount)
	return ok(entry)
}

// ListEntries returns the collection in store order (most recent first),
// narrowed by the given filters. It always succeeds.
func (a *API) ListEntries(ctx context.Context, p ListParams) Response[[]core.Entry] {
	entries := a.loadEntries(ctx)

	from, hasFrom := parseTimeBound(p.From)
	to, hasTo := parseTimeBound(p.To)
	q := strings.ToLower(strings.TrimSpace(p.Q))

	filtered := make([]core.Entry, 0, len(entries))
	for _, e := range entries {
		if p.Type != "" && p.Type != "all" && e.Type != core.EntryType(p.Type) {
			continue
		}
		if p.CardBrand != "" && p.CardBrand != "all" && e.CardBrand != core.CardBrand(p.CardBrand) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.Description), q) {
			continue
		}
		if hasFrom && e.CreatedAt.Before(from) {
			continue
		}
		if hasTo && e.CreatedAt.After(to) {
			continue
		}
		filtered = append(filtered, e)
	}

	return ok(filtered)
}

// GetEntry returns the entry with the given id.
func (a *API) GetEntry(ctx context.Context, id string) Response[core.Entry] {
	for _, e := range a.loadEntries(ctx) {
		if e.ID == id {
			return ok(e)
		}
	}
	return fail[core.Entry](errorFor(core.ErrNotFound))
}

// DeleteEntry removes the entry with the given id permanently. A miss
// leaves the store untouched.
func (a *API) DeleteEntry(ctx context.Context, id string) Response[DeleteResult] {
	entries := a.loadEntries(ctx)

	idx := -1
	for i, e := range entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fail[DeleteResult](errorFor(core.ErrNotFound))
	}

	entries = append(entries[:idx], entries[idx+1:]...)
	if err := a.store.Save(ctx, entries); err != nil {
		a.logger.Error("Failed to persist entries",
			log.FieldOperation, log.OpDelete, log.FieldError, err)
		return fail[DeleteResult](errorFor(err))
	}

	a.logger.Info("Entry deleted", log.FieldEntryID, id)
	return ok(DeleteResult{ID: id})
}

// SeedDemo prepends three fixed demo entries, timestamped into the recent
// past. Seeding is intentionally not idempotent: each call adds three more
// copies, which is the point of demo data.
func (a *API) SeedDemo(ctx context.Context) Response[SeedResult] {
	now := a.now()
	demo := []core.Entry{
		{
			ID:          a.newID(),
			CreatedAt:   now.Add(-24 * time.Hour),
			Type:        core.TypeGasto,
			Amount:      79.9,
			Description: "Mercado",
			CardBrand:   core.BrandMastercard,
		},
		{
			ID:          a.newID(),
			CreatedAt:   now.Add(-6 * time.Hour),
			Type:        core.TypeEntrada,
			Amount:      2500,
			Description: "Salário",
		},
		{
			ID:          a.newID(),
			CreatedAt:   now.Add(-45 * time.Minute),
			Type:        core.TypeGasto,
			Amount:      39.9,
			Description: "Assinatura",
			CardBrand:   core.BrandVisa,
		},
	}

	entries := append(demo, a.loadEntries(ctx)...)
	if err := a.store.Save(ctx, entries); err != nil {
		a.logger.Error("Failed to persist entries",
			log.FieldOperation, log.OpSeed, log.FieldError, err)
		return fail[SeedResult](errorFor(err))
	}

	a.logger.Info("Demo entries seeded", log.FieldCount, len(demo))
	return ok(SeedResult{Seeded: len(demo)})
}

// loadEntries reads the collection, treating a failed load as empty. The
// store already fails open on corrupt data; this extends the same policy to
// backend I/O errors so load never aborts an operation.
func (a *API) loadEntries(ctx context.Context) []core.Entry {
	entries, err := a.store.Load(ctx)
	if err != nil {
		a.logger.Warn("Failed to load entries, treating store as empty",
			log.FieldError, err)
		return nil
	}
	return entries
}

// parseTimeBound accepts RFC 3339 timestamps and plain dates; anything else
// reports no bound.
func parseTimeBound(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
