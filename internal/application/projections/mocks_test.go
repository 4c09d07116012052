package projections

import (
	"context"

	"gymverse/internal/domain/appointment"
	"gymverse/internal/domain/member"
	"gymverse/internal/domain/offer"
	"gymverse/internal/domain/plan"
	"gymverse/internal/domain/trainer"
)

type stubPlanReader struct{ plans []plan.Plan }

func (s stubPlanReader) List(_ context.Context) ([]plan.Plan, error) { return s.plans, nil }

type stubTrainerReader struct{ trainers []trainer.Trainer }

func (s stubTrainerReader) List(_ context.Context) ([]trainer.Trainer, error) {
	return s.trainers, nil
}

type stubMemberReader struct{ members []member.Member }

func (s stubMemberReader) List(_ context.Context) ([]member.Member, error) { return s.members, nil }

type stubAppointmentReader struct{ appointments []appointment.Appointment }

func (s stubAppointmentReader) List(_ context.Context) ([]appointment.Appointment, error) {
	return s.appointments, nil
}

type stubOfferReader struct{ offers []offer.Offer }

func (s stubOfferReader) List(_ context.Context) ([]offer.Offer, error) { return s.offers, nil }
