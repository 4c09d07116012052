package orchestrators

import (
	"context"
	"log/slog"

	"gymverse/internal/domain/plan"
	"gymverse/internal/domain/record"
)

// PlanStoreForSave defines the store interface needed by SavePlan and DeletePlan.
type PlanStoreForSave interface {
	List(ctx context.Context) ([]plan.Plan, error)
	Save(ctx context.Context, value plan.Plan) error
	Delete(ctx context.Context, id string) error
}

// SavePlanInput carries input for the save-plan orchestrator. An empty ID
// means create; a non-empty ID means edit.
type SavePlanInput struct {
	ID       string
	Name     string
	Category string
	OldPrice float64
	NewPrice float64
	Desc     string
	Features []string
}

// SavePlanDeps holds dependencies for SavePlan.
type SavePlanDeps struct {
	PlanStore PlanStoreForSave
}

// ExecuteSavePlan creates or updates a membership package. Package names are
// unique case-insensitively; an edit may keep its own name.
// POST: The package is persisted, or an error is returned and nothing changes
// INVARIANT: No two packages share a name, compared case-insensitively
func ExecuteSavePlan(ctx context.Context, input SavePlanInput, deps SavePlanDeps) (plan.Plan, error) {
	p := plan.Plan{
		ID:       input.ID,
		Name:     input.Name,
		Category: input.Category,
		OldPrice: input.OldPrice,
		NewPrice: input.NewPrice,
		Desc:     input.Desc,
		Features: input.Features,
	}
	if p.ID == "" {
		p.ID = record.NewID()
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if err := p.Validate(); err != nil {
		return plan.Plan{}, err
	}

	existing, err := deps.PlanStore.List(ctx)
	if err != nil {
		return plan.Plan{}, err
	}
	for _, other := range existing {
		if other.ID != p.ID && other.SameName(p.Name) {
			return plan.Plan{}, plan.ErrDuplicateName
		}
	}

	if err := deps.PlanStore.Save(ctx, p); err != nil {
		return plan.Plan{}, err
	}
	slog.Info("catalog_event", "event", "package_saved", "id", p.ID, "name", p.Name)
	return p, nil
}

// ExecuteDeletePlan removes a membership package. Members referencing the
// package by name keep the stale name; the dashboard shows them under it
// until they are reassigned.
func ExecuteDeletePlan(ctx context.Context, id string, deps SavePlanDeps) error {
	if err := deps.PlanStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "package_deleted", "id", id)
	return nil
}
