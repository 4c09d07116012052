package orchestrators

import (
	"context"
	"log/slog"

	"gymverse/internal/domain/record"
	"gymverse/internal/domain/trainer"
)

// TrainerStoreForSave defines the store interface needed by SaveTrainer and DeleteTrainer.
type TrainerStoreForSave interface {
	List(ctx context.Context) ([]trainer.Trainer, error)
	Save(ctx context.Context, value trainer.Trainer) error
	Delete(ctx context.Context, id string) error
}

// SaveTrainerInput carries input for the save-trainer orchestrator. An empty
// ID means create; a non-empty ID means edit.
type SaveTrainerInput struct {
	ID        string
	Name      string
	Specialty string
	Tags      []string
}

// SaveTrainerDeps holds dependencies for SaveTrainer.
type SaveTrainerDeps struct {
	TrainerStore TrainerStoreForSave
}

// ExecuteSaveTrainer creates or updates a trainer profile. Trainer names are
// unique case-insensitively; an edit may keep its own name.
// POST: The trainer is persisted, or an error is returned and nothing changes
// INVARIANT: No two trainers share a name, compared case-insensitively
func ExecuteSaveTrainer(ctx context.Context, input SaveTrainerInput, deps SaveTrainerDeps) (trainer.Trainer, error) {
	t := trainer.Trainer{
		ID:        input.ID,
		Name:      input.Name,
		Specialty: input.Specialty,
		Tags:      input.Tags,
	}
	if t.ID == "" {
		t.ID = record.NewID()
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if err := t.Validate(); err != nil {
		return trainer.Trainer{}, err
	}

	existing, err := deps.TrainerStore.List(ctx)
	if err != nil {
		return trainer.Trainer{}, err
	}
	for _, other := range existing {
		if other.ID != t.ID && other.SameName(t.Name) {
			return trainer.Trainer{}, trainer.ErrDuplicateName
		}
	}

	if err := deps.TrainerStore.Save(ctx, t); err != nil {
		return trainer.Trainer{}, err
	}
	slog.Info("catalog_event", "event", "trainer_saved", "id", t.ID, "name", t.Name)
	return t, nil
}

// ExecuteDeleteTrainer removes a trainer profile. Appointments referencing
// the trainer by name are left untouched.
func ExecuteDeleteTrainer(ctx context.Context, id string, deps SaveTrainerDeps) error {
	if err := deps.TrainerStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "trainer_deleted", "id", id)
	return nil
}
