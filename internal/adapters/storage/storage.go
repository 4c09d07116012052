// Package storage defines the key-value persistence port and the fixed keys
// under which all application state lives. Every value is a JSON document;
// a corrupt value is recovered by substituting the caller's default, never
// surfaced to the user.
package storage

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Canonical storage keys. Each holds a JSON-encoded array, except the two
// auth keys which hold singleton objects.
const (
	KeyPackages     = "gv_packages"
	KeyTrainers     = "gv_trainers"
	KeyMembers      = "gv_members"
	KeyAppointments = "gv_appointments"
	KeyOffers       = "gv_offers"
	KeyCredentials  = "gv_admin_creds"
	KeySession      = "gv_admin_auth"
)

// Legacy keys from the older admin panel, read only during migration.
const (
	LegacyKeyPackages     = "gym_packages"
	LegacyKeyTrainers     = "gym_trainers"
	LegacyKeyMembers      = "gym_users"
	LegacyKeyAppointments = "gym_appts"
	LegacyKeyOffers       = "gym_offers"
)

// DataKeys lists the five data keys covered by export, import, and wipe.
var DataKeys = []string{KeyPackages, KeyTrainers, KeyMembers, KeyAppointments, KeyOffers}

// KV is the key-value persistence port. Implementations provide no
// cross-process synchronization: concurrent writers race and the last write
// wins per key, which is accepted for single-operator usage.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ReadJSON decodes the stored value at key into v. A missing key, a read
// failure, or a corrupt value leaves v unchanged and returns false, so the
// caller's pre-set default stands in. Corruption is logged, never surfaced.
func ReadJSON(ctx context.Context, kv KV, key string, v any) bool {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		slog.Warn("storage_read_recovered", "key", key, "error", err)
		return false
	}
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		slog.Warn("storage_read_recovered", "key", key, "error", err)
		return false
	}
	return true
}

// WriteJSON encodes v and stores it at key.
// PRE: v is JSON-encodable
// POST: The key holds the encoded value
func WriteJSON(ctx context.Context, kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, string(data))
}
