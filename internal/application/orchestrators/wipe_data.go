package orchestrators

import (
	"context"
	"log/slog"

	"gymverse/internal/adapters/storage"
)

// WipeDataDeps holds dependencies for WipeData.
type WipeDataDeps struct {
	KV   storage.KV
	Seed SeedDefaultsDeps
}

// ExecuteWipeData removes all five data collections and reseeds the
// defaults. Credentials and the session are untouched, so the admin stays
// logged in with the same password.
// POST: Collections hold only the default catalogue and roster
func ExecuteWipeData(ctx context.Context, deps WipeDataDeps) error {
	for _, key := range storage.DataKeys {
		if err := deps.KV.Delete(ctx, key); err != nil {
			return err
		}
	}
	slog.Info("admin_event", "event", "data_wiped", "keys", len(storage.DataKeys))
	return ExecuteSeedDefaults(ctx, deps.Seed)
}
