package member

import (
	"context"

	"gymverse/internal/adapters/storage"
	domain "gymverse/internal/domain/member"
	"gymverse/internal/domain/record"
)

// KVStore implements Store on the key-value port, re-normalizing on every
// read and writing the canonical form back.
type KVStore struct {
	kv storage.KV
}

// NewKVStore creates a new member store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// List returns all members in canonical form, oldest first.
// POST: The stored sequence is canonical
func (s *KVStore) List(ctx context.Context) ([]domain.Member, error) {
	var raw []record.Raw
	storage.ReadJSON(ctx, s.kv, storage.KeyMembers, &raw)
	values := make([]domain.Member, 0, len(raw))
	for _, r := range raw {
		if v := domain.Normalize(r); v != nil {
			values = append(values, *v)
		}
	}
	if err := storage.WriteJSON(ctx, s.kv, storage.KeyMembers, values); err != nil {
		return nil, err
	}
	return values, nil
}

// Append adds a member to the end of the sequence. Intake never overwrites
// existing members.
// PRE: entity has been validated
// POST: Sequence grows by one
func (s *KVStore) Append(ctx context.Context, value domain.Member) error {
	values, err := s.List(ctx)
	if err != nil {
		return err
	}
	values = append(values, value)
	return storage.WriteJSON(ctx, s.kv, storage.KeyMembers, values)
}

// Delete removes the member with the given id.
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
	return storage.WriteJSON(ctx, s.kv, storage.KeyMembers, kept)
}

// ReplaceAll overwrites the whole sequence.
func (s *KVStore) ReplaceAll(ctx context.Context, values []domain.Member) error {
	if values == nil {
		values = []domain.Member{}
	}
	return storage.WriteJSON(ctx, s.kv, storage.KeyMembers, values)
}
