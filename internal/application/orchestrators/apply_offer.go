package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymverse/internal/domain/offer"
	"gymverse/internal/domain/plan"
	"gymverse/internal/domain/record"
)

// PlanStoreForOffer defines the store interface needed by ApplyOffer.
type PlanStoreForOffer interface {
	GetByID(ctx context.Context, id string) (plan.Plan, error)
	Save(ctx context.Context, value plan.Plan) error
}

// OfferStoreForApply defines the store interface needed by ApplyOffer.
type OfferStoreForApply interface {
	Append(ctx context.Context, value offer.Offer) error
}

// ApplyOfferInput carries input for the apply-offer orchestrator.
type ApplyOfferInput struct {
	PackageID   string
	NewPrice    float64
	Description string
}

// ApplyOfferDeps holds dependencies for ApplyOffer.
type ApplyOfferDeps struct {
	PlanStore  PlanStoreForOffer
	OfferStore OfferStoreForApply
}

// ExecuteApplyOffer discounts a package and records the change in the offer
// log. The discount must undercut both the package's old price and its
// current new price, so offers only ever move prices down.
// POST: Package carries the discounted price; the log has one more entry
// INVARIANT: Existing log entries are never modified
func ExecuteApplyOffer(ctx context.Context, input ApplyOfferInput, deps ApplyOfferDeps) (offer.Offer, error) {
	p, err := deps.PlanStore.GetByID(ctx, input.PackageID)
	if err != nil {
		return offer.Offer{}, err
	}

	entry := offer.Offer{
		ID:           record.NewID(),
		PackageID:    p.ID,
		PackageName:  p.Name,
		OldPrice:     p.OldPrice,
		PrevNewPrice: p.NewPrice,
		NewPrice:     input.NewPrice,
		Description:  input.Description,
		CreatedAt:    timeNow().UTC().Format(time.RFC3339),
	}
	if err := entry.Validate(p.OldPrice, p.NewPrice); err != nil {
		return offer.Offer{}, err
	}

	p.NewPrice = input.NewPrice
	if err := deps.PlanStore.Save(ctx, p); err != nil {
		return offer.Offer{}, err
	}
	if err := deps.OfferStore.Append(ctx, entry); err != nil {
		return offer.Offer{}, err
	}

	slog.Info("catalog_event", "event", "offer_applied", "package", p.Name, "new_price", input.NewPrice)
	return entry, nil
}
