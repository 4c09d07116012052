package trainer

import (
	"context"
	"errors"

	domain "gymverse/internal/domain/trainer"
)

// ErrNotFound is returned when no trainer matches the requested id.
var ErrNotFound = errors.New("trainer not found")

// Store persists Trainer state.
type Store interface {
	List(ctx context.Context) ([]domain.Trainer, error)
	GetByID(ctx context.Context, id string) (domain.Trainer, error)
	Save(ctx context.Context, value domain.Trainer) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, values []domain.Trainer) error
}
