package offer

import (
	"context"

	"gymverse/internal/adapters/storage"
	domain "gymverse/internal/domain/offer"
)

// KVStore implements Store on the key-value port. Offer entries are
// historical records and are stored verbatim, without re-normalization.
type KVStore struct {
	kv storage.KV
}

// NewKVStore creates a new offer store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// List returns the offer log, oldest first. A missing or corrupt value
// reads as an empty log.
func (s *KVStore) List(ctx context.Context) ([]domain.Offer, error) {
	var values []domain.Offer
	storage.ReadJSON(ctx, s.kv, storage.KeyOffers, &values)
	if values == nil {
		values = []domain.Offer{}
	}
	return values, nil
}

// Append adds an entry to the end of the log.
// PRE: entry has been validated
// POST: Log grows by one; existing entries are untouched
func (s *KVStore) Append(ctx context.Context, value domain.Offer) error {
	values, err := s.List(ctx)
	if err != nil {
		return err
	}
	values = append(values, value)
	return storage.WriteJSON(ctx, s.kv, storage.KeyOffers, values)
}

// EnsureInitialized writes an empty log when the key is absent, so later
// appends always find a well-formed array.
// POST: The key holds a JSON array
func (s *KVStore) EnsureInitialized(ctx context.Context) error {
	_, ok, err := s.kv.Get(ctx, storage.KeyOffers)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return storage.WriteJSON(ctx, s.kv, storage.KeyOffers, []domain.Offer{})
}

// ReplaceAll overwrites the whole log.
func (s *KVStore) ReplaceAll(ctx context.Context, values []domain.Offer) error {
	if values == nil {
		values = []domain.Offer{}
	}
	return storage.WriteJSON(ctx, s.kv, storage.KeyOffers, values)
}
