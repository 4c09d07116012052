package trainer

import (
	"errors"
	"strings"

	"gymverse/internal/domain/record"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("trainer name cannot be empty")
	ErrEmptySpecialty = errors.New("trainer specialty cannot be empty")
	ErrDuplicateName  = errors.New("a trainer with the same name already exists")
)

// Trainer is a coach profile shown on the site and bookable for appointments.
type Trainer struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Tags      []string `json:"tags"`
}

// Normalize reconciles a loosely-shaped trainer record into canonical form.
// PRE: raw is a decoded JSON object or nil
// POST: Returns nil for nil input; otherwise a canonical record with identity
// INVARIANT: Normalizing an already-canonical record yields the same record
func Normalize(raw record.Raw) *Trainer {
	if raw == nil {
		return nil
	}
	return &Trainer{
		ID:        raw.ID(),
		Name:      raw.String("name"),
		Specialty: raw.String("specialty", "spec"),
		Tags:      raw.StringList("tags"),
	}
}

// Validate checks the business rules for creating or editing a trainer.
// PRE: Trainer struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Trainer) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(t.Specialty) == "" {
		return ErrEmptySpecialty
	}
	return nil
}

// SameName reports whether the trainer name matches, case-insensitively.
// INVARIANT: Trainer fields are not mutated
func (t *Trainer) SameName(name string) bool {
	return strings.EqualFold(t.Name, name)
}
