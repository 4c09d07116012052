package plan

import (
	"context"
	"errors"

	domain "gymverse/internal/domain/plan"
)

// ErrNotFound is returned when no package matches the requested id.
var ErrNotFound = errors.New("package not found")

// Store persists Plan state.
type Store interface {
	List(ctx context.Context) ([]domain.Plan, error)
	GetByID(ctx context.Context, id string) (domain.Plan, error)
	Save(ctx context.Context, value domain.Plan) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, values []domain.Plan) error
}
