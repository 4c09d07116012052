package appointment

import (
	"context"

	"gymverse/internal/adapters/storage"
	domain "gymverse/internal/domain/appointment"
	"gymverse/internal/domain/record"
)

// KVStore implements Store on the key-value port, re-normalizing on every
// read and writing the canonical form back.
type KVStore struct {
	kv storage.KV
}

// NewKVStore creates a new appointment store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// List returns all appointments in canonical form, oldest first.
// POST: The stored sequence is canonical
func (s *KVStore) List(ctx context.Context) ([]domain.Appointment, error) {
	var raw []record.Raw
	storage.ReadJSON(ctx, s.kv, storage.KeyAppointments, &raw)
	values := make([]domain.Appointment, 0, len(raw))
	for _, r := range raw {
		if v := domain.Normalize(r); v != nil {
			values = append(values, *v)
		}
	}
	if err := storage.WriteJSON(ctx, s.kv, storage.KeyAppointments, values); err != nil {
		return nil, err
	}
	return values, nil
}

// GetByID retrieves an appointment by its id.
// PRE: id is non-empty
// POST: Returns the entity or ErrNotFound
func (s *KVStore) GetByID(ctx context.Context, id string) (domain.Appointment, error) {
	values, err := s.List(ctx)
	if err != nil {
		return domain.Appointment{}, err
	}
	for _, v := range values {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Appointment{}, ErrNotFound
}

// Append adds an appointment to the end of the sequence.
// PRE: entity has been validated
// POST: Sequence grows by one
func (s *KVStore) Append(ctx context.Context, value domain.Appointment) error {
	values, err := s.List(ctx)
	if err != nil {
		return err
	}
	values = append(values, value)
	return storage.WriteJSON(ctx, s.kv, storage.KeyAppointments, values)
}

// Save persists an appointment update in place by id.
// PRE: entity exists in the sequence
// POST: Entity is replaced, or ErrNotFound when absent
func (s *KVStore) Save(ctx context.Context, value domain.Appointment) error {
	values, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i, v := range values {
		if v.ID == value.ID {
			values[i] = value
			return storage.WriteJSON(ctx, s.kv, storage.KeyAppointments, values)
		}
	}
	return ErrNotFound
}

// Delete removes the appointment with the given id.
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
	return storage.WriteJSON(ctx, s.kv, storage.KeyAppointments, kept)
}

// Clear removes every appointment.
// POST: The stored sequence is empty
func (s *KVStore) Clear(ctx context.Context) error {
	return storage.WriteJSON(ctx, s.kv, storage.KeyAppointments, []domain.Appointment{})
}

// ReplaceAll overwrites the whole sequence.
func (s *KVStore) ReplaceAll(ctx context.Context, values []domain.Appointment) error {
	if values == nil {
		values = []domain.Appointment{}
	}
	return storage.WriteJSON(ctx, s.kv, storage.KeyAppointments, values)
}
