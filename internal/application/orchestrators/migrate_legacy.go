package orchestrators

import (
	"context"
	"encoding/json"
	"log/slog"

	"gymverse/internal/adapters/storage"
)

// legacyPairs maps each canonical key to the key the older admin panel
// wrote under.
var legacyPairs = map[string]string{
	storage.KeyPackages:     storage.LegacyKeyPackages,
	storage.KeyTrainers:     storage.LegacyKeyTrainers,
	storage.KeyMembers:      storage.LegacyKeyMembers,
	storage.KeyAppointments: storage.LegacyKeyAppointments,
	storage.KeyOffers:       storage.LegacyKeyOffers,
}

// MigrateLegacyDeps holds dependencies for MigrateLegacy.
type MigrateLegacyDeps struct {
	KV storage.KV
}

// ExecuteMigrateLegacy copies data from legacy keys to canonical keys. Each
// entity migrates independently; a canonical key that already holds data is
// never overwritten, so re-running migration is harmless. Legacy values are
// copied verbatim — the stores normalize on first read.
// POST: Every canonical key with no data and a non-empty legacy source holds
// the legacy value
// INVARIANT: Canonical data is never overwritten; legacy keys are not removed
func ExecuteMigrateLegacy(ctx context.Context, deps MigrateLegacyDeps) error {
	migrated := 0
	for canonical, legacy := range legacyPairs {
		ok, err := hasData(ctx, deps.KV, canonical)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		ok, err = hasData(ctx, deps.KV, legacy)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		value, _, err := deps.KV.Get(ctx, legacy)
		if err != nil {
			return err
		}
		if err := deps.KV.Set(ctx, canonical, value); err != nil {
			return err
		}
		slog.Info("migration_event", "event", "key_migrated", "from", legacy, "to", canonical)
		migrated++
	}
	if migrated > 0 {
		slog.Info("migration_event", "event", "legacy_migration_done", "keys", migrated)
	}
	return nil
}

// hasData reports whether the key holds a JSON array with at least one
// element. A missing key, a corrupt value, or an empty array all count as
// no data.
func hasData(ctx context.Context, kv storage.KV, key string) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || raw == "" {
		return false, nil
	}
	var values []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return false, nil
	}
	return len(values) > 0, nil
}
