// Package projections provides read-only queries over the stored data.
// Projections never write; re-normalization on read happens in the stores.
package projections

import (
	"context"

	"gymverse/internal/domain/appointment"
	"gymverse/internal/domain/member"
	"gymverse/internal/domain/offer"
	"gymverse/internal/domain/plan"
	"gymverse/internal/domain/trainer"
)

// PlanReader lists membership packages.
type PlanReader interface {
	List(ctx context.Context) ([]plan.Plan, error)
}

// TrainerReader lists trainers.
type TrainerReader interface {
	List(ctx context.Context) ([]trainer.Trainer, error)
}

// MemberReader lists members.
type MemberReader interface {
	List(ctx context.Context) ([]member.Member, error)
}

// AppointmentReader lists appointments.
type AppointmentReader interface {
	List(ctx context.Context) ([]appointment.Appointment, error)
}

// OfferReader lists offer log entries.
type OfferReader interface {
	List(ctx context.Context) ([]offer.Offer, error)
}
