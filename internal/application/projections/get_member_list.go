package projections

import (
	"context"
	"strings"

	"gymverse/internal/domain/member"
)

// GetMemberListQuery carries input for the member list projection.
type GetMemberListQuery struct {
	Search string
}

// QueryGetMemberList returns the members matching the search text, newest
// first. The search is a case-insensitive substring match on name, email,
// phone, plan, and notes.
func QueryGetMemberList(ctx context.Context, query GetMemberListQuery, store MemberReader) ([]member.Member, error) {
	members, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	f := strings.ToLower(strings.TrimSpace(query.Search))
	matched := make([]member.Member, 0, len(members))
	// Reverse: stores keep intake order, the admin wants the latest on top.
	for i := len(members) - 1; i >= 0; i-- {
		m := members[i]
		if f == "" {
			matched = append(matched, m)
			continue
		}
		haystack := strings.ToLower(m.FullName + " " + m.Email + " " + m.Phone + " " + m.Plan + " " + m.Notes)
		if strings.Contains(haystack, f) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}
