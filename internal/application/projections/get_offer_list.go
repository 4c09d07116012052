package projections

import (
	"context"
	"strings"

	"gymverse/internal/domain/offer"
)

// GetOfferListQuery carries input for the offer list projection.
type GetOfferListQuery struct {
	Search string
}

// QueryGetOfferList returns the offer log entries matching the search text,
// newest first. The search is a case-insensitive substring match on package
// name and description.
func QueryGetOfferList(ctx context.Context, query GetOfferListQuery, store OfferReader) ([]offer.Offer, error) {
	offers, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	f := strings.ToLower(strings.TrimSpace(query.Search))
	matched := make([]offer.Offer, 0, len(offers))
	for i := len(offers) - 1; i >= 0; i-- {
		o := offers[i]
		if f == "" {
			matched = append(matched, o)
			continue
		}
		haystack := strings.ToLower(o.PackageName + " " + o.Description)
		if strings.Contains(haystack, f) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}
