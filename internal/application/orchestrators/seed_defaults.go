package orchestrators

import (
	"context"
	"log/slog"

	"gymverse/internal/domain/plan"
	"gymverse/internal/domain/record"
	"gymverse/internal/domain/trainer"
)

// PlanStoreForSeed defines the store interface needed by SeedDefaults.
type PlanStoreForSeed interface {
	List(ctx context.Context) ([]plan.Plan, error)
	ReplaceAll(ctx context.Context, values []plan.Plan) error
}

// TrainerStoreForSeed defines the store interface needed by SeedDefaults.
type TrainerStoreForSeed interface {
	List(ctx context.Context) ([]trainer.Trainer, error)
	ReplaceAll(ctx context.Context, values []trainer.Trainer) error
}

// OfferStoreForSeed defines the store interface needed by SeedDefaults.
type OfferStoreForSeed interface {
	EnsureInitialized(ctx context.Context) error
}

// SeedDefaultsDeps holds dependencies for SeedDefaults.
type SeedDefaultsDeps struct {
	PlanStore    PlanStoreForSeed
	TrainerStore TrainerStoreForSeed
	OfferStore   OfferStoreForSeed
}

// defaultPlans returns the starter catalogue, with fresh ids per call.
func defaultPlans() []plan.Plan {
	return []plan.Plan{
		{
			ID: record.NewID(), Name: "Starter", Category: "Monthly",
			OldPrice: 12000, NewPrice: 8999,
			Desc:     "Perfect for beginners who want a clean start.",
			Features: []string{"Full gym access", "Basic diet guidance", "2 group classes/week"},
		},
		{
			ID: record.NewID(), Name: "Pro", Category: "Monthly",
			OldPrice: 18000, NewPrice: 13999,
			Desc:     "Best value for serious training and progress.",
			Features: []string{"Full gym access", "4 group classes/week", "Monthly body scan", "Trainer check-in"},
		},
		{
			ID: record.NewID(), Name: "Elite", Category: "Monthly",
			OldPrice: 25000, NewPrice: 19999,
			Desc:     "Premium coaching + best results support.",
			Features: []string{"Full gym access", "Unlimited classes", "1:1 coaching session/week", "Custom meal plan"},
		},
	}
}

// defaultTrainers returns the starter roster, with fresh ids per call.
func defaultTrainers() []trainer.Trainer {
	return []trainer.Trainer{
		{ID: record.NewID(), Name: "Ayesha Khan", Specialty: "Strength & Conditioning", Tags: []string{"Power", "Hypertrophy", "Form"}},
		{ID: record.NewID(), Name: "Hamza Ali", Specialty: "Fat Loss Coach", Tags: []string{"HIIT", "Cutting", "Cardio"}},
		{ID: record.NewID(), Name: "Sara Noor", Specialty: "Yoga & Mobility", Tags: []string{"Flexibility", "Recovery", "Posture"}},
	}
}

// ExecuteSeedDefaults writes the default catalogue and roster if none exist.
// Each collection is checked independently, so a gym with packages but no
// trainers still gets the default trainers.
// POST: Packages and trainers are non-empty; the offer log is a valid array
// INVARIANT: Existing data is never overwritten
func ExecuteSeedDefaults(ctx context.Context, deps SeedDefaultsDeps) error {
	plans, err := deps.PlanStore.List(ctx)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		if err := deps.PlanStore.ReplaceAll(ctx, defaultPlans()); err != nil {
			return err
		}
		slog.Info("seed_event", "event", "packages_seeded", "count", 3)
	}

	trainers, err := deps.TrainerStore.List(ctx)
	if err != nil {
		return err
	}
	if len(trainers) == 0 {
		if err := deps.TrainerStore.ReplaceAll(ctx, defaultTrainers()); err != nil {
			return err
		}
		slog.Info("seed_event", "event", "trainers_seeded", "count", 3)
	}

	return deps.OfferStore.EnsureInitialized(ctx)
}
