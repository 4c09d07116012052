package projections

import (
	"context"
	"strings"

	"gymverse/internal/domain/plan"
)

// GetPackageListQuery carries input for the package list projection.
type GetPackageListQuery struct {
	Search string
}

// QueryGetPackageList returns the packages matching the search text. The
// search is a case-insensitive substring match on name, category,
// description, and features; empty search matches everything.
func QueryGetPackageList(ctx context.Context, query GetPackageListQuery, store PlanReader) ([]plan.Plan, error) {
	plans, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	f := strings.ToLower(strings.TrimSpace(query.Search))
	if f == "" {
		return plans, nil
	}
	matched := make([]plan.Plan, 0, len(plans))
	for _, p := range plans {
		haystack := strings.ToLower(p.Name + " " + p.Category + " " + p.Desc + " " + strings.Join(p.Features, ","))
		if strings.Contains(haystack, f) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
