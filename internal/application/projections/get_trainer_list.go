package projections

import (
	"context"
	"strings"

	"gymverse/internal/domain/trainer"
)

// GetTrainerListQuery carries input for the trainer list projection.
type GetTrainerListQuery struct {
	Search string
}

// QueryGetTrainerList returns the trainers matching the search text. The
// search is a case-insensitive substring match on name, specialty, and tags.
func QueryGetTrainerList(ctx context.Context, query GetTrainerListQuery, store TrainerReader) ([]trainer.Trainer, error) {
	trainers, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	f := strings.ToLower(strings.TrimSpace(query.Search))
	if f == "" {
		return trainers, nil
	}
	matched := make([]trainer.Trainer, 0, len(trainers))
	for _, t := range trainers {
		haystack := strings.ToLower(t.Name + " " + t.Specialty + " " + strings.Join(t.Tags, ","))
		if strings.Contains(haystack, f) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}
