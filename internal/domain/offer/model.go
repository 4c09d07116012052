package offer

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyPackage     = errors.New("select a package")
	ErrEmptyDescription = errors.New("offer description is required")
	ErrInvalidPrice     = errors.New("valid discounted price is required")
	ErrNotBelowOld      = errors.New("discount must be less than the old price")
	ErrNotBelowCurrent  = errors.New("discount must be less than the current new price")
)

// Offer is an append-only audit entry recording a price reduction applied to
// a package at a point in time. Offers are never edited or deleted.
type Offer struct {
	ID           string  `json:"id"`
	PackageID    string  `json:"packageId"`
	PackageName  string  `json:"packageName"`
	OldPrice     float64 `json:"oldPrice"`
	PrevNewPrice float64 `json:"prevNewPrice"`
	NewPrice     float64 `json:"newPrice"`
	Description  string  `json:"description"`
	CreatedAt    string  `json:"createdAt"`
}

// Validate checks the rules for applying an offer against the package prices
// it targets.
// PRE: oldPrice and currentNewPrice come from the target package
// POST: Returns nil if the discount is allowed, error otherwise
func (o *Offer) Validate(oldPrice, currentNewPrice float64) error {
	if o.PackageID == "" {
		return ErrEmptyPackage
	}
	if strings.TrimSpace(o.Description) == "" {
		return ErrEmptyDescription
	}
	if o.NewPrice <= 0 {
		return ErrInvalidPrice
	}
	if o.NewPrice >= oldPrice {
		return ErrNotBelowOld
	}
	if o.NewPrice >= currentNewPrice {
		return ErrNotBelowCurrent
	}
	return nil
}
