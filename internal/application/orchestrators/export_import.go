package orchestrators

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"gymverse/internal/domain/appointment"
	"gymverse/internal/domain/member"
	"gymverse/internal/domain/offer"
	"gymverse/internal/domain/plan"
	"gymverse/internal/domain/record"
	"gymverse/internal/domain/trainer"
)

// ErrInvalidImport is returned when the import payload is not valid JSON.
var ErrInvalidImport = errors.New("invalid JSON")

// ExportPayload is the full data snapshot, keyed by the storage keys so an
// export round-trips through import unchanged.
type ExportPayload struct {
	Packages     []plan.Plan               `json:"gv_packages"`
	Trainers     []trainer.Trainer         `json:"gv_trainers"`
	Members      []member.Member           `json:"gv_members"`
	Appointments []appointment.Appointment `json:"gv_appointments"`
	Offers       []offer.Offer             `json:"gv_offers"`
}

// PlanStoreForTransfer defines the store interface needed by Export and Import.
type PlanStoreForTransfer interface {
	List(ctx context.Context) ([]plan.Plan, error)
	ReplaceAll(ctx context.Context, values []plan.Plan) error
}

// TrainerStoreForTransfer defines the store interface needed by Export and Import.
type TrainerStoreForTransfer interface {
	List(ctx context.Context) ([]trainer.Trainer, error)
	ReplaceAll(ctx context.Context, values []trainer.Trainer) error
}

// MemberStoreForTransfer defines the store interface needed by Export and Import.
type MemberStoreForTransfer interface {
	List(ctx context.Context) ([]member.Member, error)
	ReplaceAll(ctx context.Context, values []member.Member) error
}

// AppointmentStoreForTransfer defines the store interface needed by Export and Import.
type AppointmentStoreForTransfer interface {
	List(ctx context.Context) ([]appointment.Appointment, error)
	ReplaceAll(ctx context.Context, values []appointment.Appointment) error
}

// OfferStoreForTransfer defines the store interface needed by Export and Import.
type OfferStoreForTransfer interface {
	List(ctx context.Context) ([]offer.Offer, error)
	ReplaceAll(ctx context.Context, values []offer.Offer) error
}

// TransferDeps holds dependencies for Export and Import.
type TransferDeps struct {
	PlanStore        PlanStoreForTransfer
	TrainerStore     TrainerStoreForTransfer
	MemberStore      MemberStoreForTransfer
	AppointmentStore AppointmentStoreForTransfer
	OfferStore       OfferStoreForTransfer
}

// ExecuteExport collects all five collections into one payload.
// POST: Payload holds canonical data for every collection
func ExecuteExport(ctx context.Context, deps TransferDeps) (ExportPayload, error) {
	var payload ExportPayload
	var err error
	if payload.Packages, err = deps.PlanStore.List(ctx); err != nil {
		return ExportPayload{}, err
	}
	if payload.Trainers, err = deps.TrainerStore.List(ctx); err != nil {
		return ExportPayload{}, err
	}
	if payload.Members, err = deps.MemberStore.List(ctx); err != nil {
		return ExportPayload{}, err
	}
	if payload.Appointments, err = deps.AppointmentStore.List(ctx); err != nil {
		return ExportPayload{}, err
	}
	if payload.Offers, err = deps.OfferStore.List(ctx); err != nil {
		return ExportPayload{}, err
	}
	slog.Info("transfer_event", "event", "exported",
		"packages", len(payload.Packages), "trainers", len(payload.Trainers),
		"members", len(payload.Members), "appointments", len(payload.Appointments),
		"offers", len(payload.Offers))
	return payload, nil
}

// rawImport matches the import wire shape: each collection is a list of
// loosely-shaped objects to be normalized, except offers, which are
// historical entries taken verbatim.
type rawImport struct {
	Packages     []record.Raw  `json:"gv_packages"`
	Trainers     []record.Raw  `json:"gv_trainers"`
	Members      []record.Raw  `json:"gv_members"`
	Appointments []record.Raw  `json:"gv_appointments"`
	Offers       []offer.Offer `json:"gv_offers"`
}

// ExecuteImport replaces all five collections from a JSON payload. The
// payload is normalized entity by entity; a missing collection imports as
// empty. A payload that fails to parse imports nothing at all.
// POST: All collections are replaced, or ErrInvalidImport and nothing changes
func ExecuteImport(ctx context.Context, data []byte, deps TransferDeps) error {
	var raw rawImport
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidImport
	}

	plans := make([]plan.Plan, 0, len(raw.Packages))
	for _, r := range raw.Packages {
		if v := plan.Normalize(r); v != nil {
			plans = append(plans, *v)
		}
	}
	trainers := make([]trainer.Trainer, 0, len(raw.Trainers))
	for _, r := range raw.Trainers {
		if v := trainer.Normalize(r); v != nil {
			trainers = append(trainers, *v)
		}
	}
	members := make([]member.Member, 0, len(raw.Members))
	for _, r := range raw.Members {
		if v := member.Normalize(r); v != nil {
			members = append(members, *v)
		}
	}
	appointments := make([]appointment.Appointment, 0, len(raw.Appointments))
	for _, r := range raw.Appointments {
		if v := appointment.Normalize(r); v != nil {
			appointments = append(appointments, *v)
		}
	}

	if err := deps.PlanStore.ReplaceAll(ctx, plans); err != nil {
		return err
	}
	if err := deps.TrainerStore.ReplaceAll(ctx, trainers); err != nil {
		return err
	}
	if err := deps.MemberStore.ReplaceAll(ctx, members); err != nil {
		return err
	}
	if err := deps.AppointmentStore.ReplaceAll(ctx, appointments); err != nil {
		return err
	}
	if err := deps.OfferStore.ReplaceAll(ctx, raw.Offers); err != nil {
		return err
	}

	slog.Info("transfer_event", "event", "imported",
		"packages", len(plans), "trainers", len(trainers),
		"members", len(members), "appointments", len(appointments),
		"offers", len(raw.Offers))
	return nil
}
