package member

import (
	"context"
	"errors"

	domain "gymverse/internal/domain/member"
)

// ErrNotFound is returned when no member matches the requested id.
var ErrNotFound = errors.New("member not found")

// Store persists Member state. Public intake only appends; deletion is an
// admin operation.
type Store interface {
	List(ctx context.Context) ([]domain.Member, error)
	Append(ctx context.Context, value domain.Member) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, values []domain.Member) error
}
