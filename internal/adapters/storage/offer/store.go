package offer

import (
	"context"

	domain "gymverse/internal/domain/offer"
)

// Store persists the offer audit log. The log is append-only during normal
// operation; ReplaceAll exists for import and wipe.
type Store interface {
	List(ctx context.Context) ([]domain.Offer, error)
	Append(ctx context.Context, value domain.Offer) error
	EnsureInitialized(ctx context.Context) error
	ReplaceAll(ctx context.Context, values []domain.Offer) error
}
