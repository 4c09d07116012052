package plan

import (
	"context"

	"gymverse/internal/adapters/storage"
	domain "gymverse/internal/domain/plan"
	"gymverse/internal/domain/record"
)

// KVStore implements Store on the key-value port. Every read re-normalizes
// the stored records and writes the canonical form back, so legacy shapes
// heal in place.
type KVStore struct {
	kv storage.KV
}

// NewKVStore creates a new package store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// List returns all packages in canonical form.
// POST: The stored sequence is canonical
func (s *KVStore) List(ctx context.Context) ([]domain.Plan, error) {
	var raw []record.Raw
	storage.ReadJSON(ctx, s.kv, storage.KeyPackages, &raw)
	values := make([]domain.Plan, 0, len(raw))
	for _, r := range raw {
		if v := domain.Normalize(r); v != nil {
			values = append(values, *v)
		}
	}
	if err := storage.WriteJSON(ctx, s.kv, storage.KeyPackages, values); err != nil {
		return nil, err
	}
	return values, nil
}

// GetByID retrieves a package by its id.
// PRE: id is non-empty
// POST: Returns the entity or ErrNotFound
func (s *KVStore) GetByID(ctx context.Context, id string) (domain.Plan, error) {
	values, err := s.List(ctx)
	if err != nil {
		return domain.Plan{}, err
	}
	for _, v := range values {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Plan{}, ErrNotFound
}

// Save persists a package (insert or update by id).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *KVStore) Save(ctx context.Context, value domain.Plan) error {
	values, err := s.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, v := range values {
		if v.ID == value.ID {
			values[i] = value
			replaced = true
			break
		}
	}
	if !replaced {
		values = append(values, value)
	}
	return storage.WriteJSON(ctx, s.kv, storage.KeyPackages, values)
}

// Delete removes the package with the given id. Deleting an absent id is not
// an error.
func (s *KVStore) Delete(ctx context.Context, id string) error {
	values, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := values[:0]
	for _, v := range values {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	return storage.WriteJSON(ctx, s.kv, storage.KeyPackages, kept)
}

// ReplaceAll overwrites the whole sequence.
// PRE: values are canonical
// POST: The stored sequence equals values
func (s *KVStore) ReplaceAll(ctx context.Context, values []domain.Plan) error {
	if values == nil {
		values = []domain.Plan{}
	}
	return storage.WriteJSON(ctx, s.kv, storage.KeyPackages, values)
}
