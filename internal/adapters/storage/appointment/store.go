package appointment

import (
	"context"
	"errors"

	domain "gymverse/internal/domain/appointment"
)

// ErrNotFound is returned when no appointment matches the requested id.
var ErrNotFound = errors.New("appointment not found")

// Store persists Appointment state. Public intake appends; admins update
// status, delete individual records, or clear the whole book.
type Store interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	GetByID(ctx context.Context, id string) (domain.Appointment, error)
	Append(ctx context.Context, value domain.Appointment) error
	Save(ctx context.Context, value domain.Appointment) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	ReplaceAll(ctx context.Context, values []domain.Appointment) error
}
