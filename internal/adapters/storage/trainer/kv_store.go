package trainer

import (
	"context"

	"gymverse/internal/adapters/storage"
	"gymverse/internal/domain/record"
	domain "gymverse/internal/domain/trainer"
)

// KVStore implements Store on the key-value port, re-normalizing on every
// read and writing the canonical form back.
type KVStore struct {
	kv storage.KV
}

// NewKVStore creates a new trainer store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// List returns all trainers in canonical form.
// POST: The stored sequence is canonical
func (s *KVStore) List(ctx context.Context) ([]domain.Trainer, error) {
	var raw []record.Raw
	storage.ReadJSON(ctx, s.kv, storage.KeyTrainers, &raw)
	values := make([]domain.Trainer, 0, len(raw))
	for _, r := range raw {
		if v := domain.Normalize(r); v != nil {
			values = append(values, *v)
		}
	}
	if err := storage.WriteJSON(ctx, s.kv, storage.KeyTrainers, values); err != nil {
		return nil, err
	}
	return values, nil
}

// GetByID retrieves a trainer by its id.
// PRE: id is non-empty
// POST: Returns the entity or ErrNotFound
func (s *KVStore) GetByID(ctx context.Context, id string) (domain.Trainer, error) {
	values, err := s.List(ctx)
	if err != nil {
		return domain.Trainer{}, err
	}
	for _, v := range values {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Trainer{}, ErrNotFound
}

// Save persists a trainer (insert or update by id).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *KVStore) Save(ctx context.Context, value domain.Trainer) error {
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
	return storage.WriteJSON(ctx, s.kv, storage.KeyTrainers, values)
}

// Delete removes the trainer with the given id.
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
	return storage.WriteJSON(ctx, s.kv, storage.KeyTrainers, kept)
}

// ReplaceAll overwrites the whole sequence.
func (s *KVStore) ReplaceAll(ctx context.Context, values []domain.Trainer) error {
	if values == nil {
		values = []domain.Trainer{}
	}
	return storage.WriteJSON(ctx, s.kv, storage.KeyTrainers, values)
}
