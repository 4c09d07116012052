package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymverse/internal/domain/member"
	"gymverse/internal/domain/record"
)

// MemberStoreForJoin defines the store interface needed by JoinMember and DeleteMember.
type MemberStoreForJoin interface {
	Append(ctx context.Context, value member.Member) error
	Delete(ctx context.Context, id string) error
}

// JoinMemberInput carries input from the public join form.
type JoinMemberInput struct {
	FullName string
	Email    string
	Phone    string
	Gender   string
	Age      string
	Plan     string
	Notes    string
}

// JoinMemberDeps holds dependencies for JoinMember.
type JoinMemberDeps struct {
	MemberStore MemberStoreForJoin
}

// ExecuteJoinMember records a new member from the public join form. Intake
// is append-only: duplicate submissions create duplicate members, which the
// admin resolves by hand.
// POST: Member is persisted with identity and join timestamp
func ExecuteJoinMember(ctx context.Context, input JoinMemberInput, deps JoinMemberDeps) (member.Member, error) {
	m := member.Member{
		ID:        record.NewID(),
		CreatedAt: timeNow().UTC().Format(time.RFC3339),
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		Gender:    input.Gender,
		Age:       input.Age,
		Plan:      input.Plan,
		Notes:     input.Notes,
	}
	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}

	if err := deps.MemberStore.Append(ctx, m); err != nil {
		return member.Member{}, err
	}
	slog.Info("intake_event", "event", "member_joined", "id", m.ID, "plan", m.Plan)
	return m, nil
}

// ExecuteDeleteMember removes a member record.
func ExecuteDeleteMember(ctx context.Context, id string, deps JoinMemberDeps) error {
	if err := deps.MemberStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("intake_event", "event", "member_deleted", "id", id)
	return nil
}
