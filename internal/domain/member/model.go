package member

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"gymverse/internal/domain/record"
)

// Domain errors
var (
	ErrEmptyName    = errors.New("full name is required")
	ErrInvalidEmail = errors.New("valid email is required")
	ErrEmptyPhone   = errors.New("phone is required")
	ErrEmptyPlan    = errors.New("please select a plan")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// timeNow is a variable for testability.
var timeNow = time.Now

// Member is a gym member captured through the public join form.
// Plan references a package by name, not by id.
type Member struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender,omitempty"`
	Age       string `json:"age,omitempty"`
	Plan      string `json:"plan"`
	Notes     string `json:"notes"`
}

// Normalize reconciles a loosely-shaped member record into canonical form.
// The legacy admin stored members as { memberName, package, message }.
// PRE: raw is a decoded JSON object or nil
// POST: Returns nil for nil input; otherwise a canonical record with identity
// INVARIANT: Normalizing an already-canonical record yields the same record
func Normalize(raw record.Raw) *Member {
	if raw == nil {
		return nil
	}
	createdAt := raw.String("createdAt")
	if createdAt == "" {
		createdAt = timeNow().UTC().Format(time.RFC3339)
	}
	return &Member{
		ID:        raw.ID(),
		CreatedAt: createdAt,
		FullName:  raw.String("fullName", "memberName"),
		Email:     raw.String("email"),
		Phone:     raw.String("phone"),
		Gender:    raw.String("gender"),
		Age:       raw.String("age"),
		Plan:      raw.String("plan", "package"),
		Notes:     raw.String("notes", "message"),
	}
}

// Validate checks the intake rules for the public join form.
// PRE: Member struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Member) Validate() error {
	if strings.TrimSpace(m.FullName) == "" {
		return ErrEmptyName
	}
	if !emailPattern.MatchString(m.Email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(m.Phone) == "" {
		return ErrEmptyPhone
	}
	if strings.TrimSpace(m.Plan) == "" {
		return ErrEmptyPlan
	}
	return nil
}

// JoinedAfter reports whether the member joined at or after the given time.
// An unparseable createdAt counts as not joined.
// INVARIANT: Member fields are not mutated
func (m *Member) JoinedAfter(cutoff time.Time) bool {
	t, err := time.Parse(time.RFC3339, m.CreatedAt)
	if err != nil {
		return false
	}
	return !t.Before(cutoff)
}

// JoinedOn reports whether the member joined on the given calendar day,
// evaluated in the day's location.
// INVARIANT: Member fields are not mutated
func (m *Member) JoinedOn(day time.Time) bool {
	t, err := time.Parse(time.RFC3339, m.CreatedAt)
	if err != nil {
		return false
	}
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
