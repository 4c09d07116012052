package plan

import (
	"errors"
	"strings"

	"gymverse/internal/domain/record"
)

// Domain errors
var (
	ErrEmptyName       = errors.New("package name cannot be empty")
	ErrEmptyCategory   = errors.New("package category cannot be empty")
	ErrInvalidOldPrice = errors.New("old price must be greater than zero")
	ErrInvalidNewPrice = errors.New("new price must be greater than zero")
	ErrPriceNotLower   = errors.New("new price must be less than old price")
	ErrDuplicateName   = errors.New("a package with the same name already exists")
)

// Plan is a membership package offered by the gym.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	OldPrice float64  `json:"oldPrice"`
	NewPrice float64  `json:"newPrice"`
	Desc     string   `json:"desc"`
	Features []string `json:"features"`
}

// Normalize reconciles a loosely-shaped package record into canonical form.
// Older shapes used pName/pCat, a single "final" price, or offerPrice.
// PRE: raw is a decoded JSON object or nil
// POST: Returns nil for nil input; otherwise a canonical record with identity
// INVARIANT: Normalizing an already-canonical record yields the same record
func Normalize(raw record.Raw) *Plan {
	if raw == nil {
		return nil
	}
	return &Plan{
		ID:       raw.ID(),
		Name:     raw.String("name", "pName"),
		Category: raw.String("category", "cat", "pCat"),
		OldPrice: raw.Number("oldPrice", "old", "price", "final", "pPrice"),
		NewPrice: raw.Number("newPrice", "new", "final", "offerPrice", "pPrice"),
		Desc:     raw.String("desc", "description", "offerDesc"),
		Features: raw.StringList("features"),
	}
}

// Validate checks the business rules for creating or editing a package.
// Normalization is deliberately more permissive: legacy and imported records
// are kept even when they break these rules.
// PRE: Plan struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}
	if p.OldPrice <= 0 {
		return ErrInvalidOldPrice
	}
	if p.NewPrice <= 0 {
		return ErrInvalidNewPrice
	}
	if p.NewPrice >= p.OldPrice {
		return ErrPriceNotLower
	}
	return nil
}

// SameName reports whether the package name matches, case-insensitively.
// INVARIANT: Plan fields are not mutated
func (p *Plan) SameName(name string) bool {
	return strings.EqualFold(p.Name, name)
}
