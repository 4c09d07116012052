package member

import (
	"testing"
	"time"

	"gymverse/internal/domain/record"
)

// TestNormalize_LegacyShape tests the { memberName, package, message } shape.
func TestNormalize_LegacyShape(t *testing.T) {
	got := Normalize(record.Raw{
		"id": "m1", "createdAt": "2026-08-01T10:00:00Z",
		"memberName": "Ali", "email": "ali@example.com", "phone": "123",
		"package": "Pro", "message": "evenings only",
	})
	if got.FullName != "Ali" {
		t.Errorf("FullName = %q, want Ali", got.FullName)
	}
	if got.Plan != "Pro" {
		t.Errorf("Plan = %q, want Pro", got.Plan)
	}
	if got.Notes != "evenings only" {
		t.Errorf("Notes = %q, want evenings only", got.Notes)
	}
}

// TestNormalize_DefaultsCreatedAt tests that a missing createdAt is stamped.
func TestNormalize_DefaultsCreatedAt(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()

	got := Normalize(record.Raw{"id": "m1", "fullName": "Ali"})
	if got.CreatedAt != "2026-08-30T12:00:00Z" {
		t.Errorf("CreatedAt = %q, want 2026-08-30T12:00:00Z", got.CreatedAt)
	}
}

// TestNormalize_KeepsCreatedAt tests that an existing createdAt is preserved.
func TestNormalize_KeepsCreatedAt(t *testing.T) {
	got := Normalize(record.Raw{"id": "m1", "createdAt": "2025-01-01T00:00:00Z"})
	if got.CreatedAt != "2025-01-01T00:00:00Z" {
		t.Errorf("CreatedAt = %q, want preserved value", got.CreatedAt)
	}
}

// TestValidate tests the join form intake rules.
func TestValidate(t *testing.T) {
	valid := Member{FullName: "Ali", Email: "ali@example.com", Phone: "123", Plan: "Pro"}

	tests := []struct {
		name    string
		mutate  func(m *Member)
		wantErr error
	}{
		{"valid", func(m *Member) {}, nil},
		{"empty name", func(m *Member) { m.FullName = " " }, ErrEmptyName},
		{"bad email", func(m *Member) { m.Email = "not-an-email" }, ErrInvalidEmail},
		{"email missing domain dot", func(m *Member) { m.Email = "a@b" }, ErrInvalidEmail},
		{"empty phone", func(m *Member) { m.Phone = "" }, ErrEmptyPhone},
		{"no plan", func(m *Member) { m.Plan = "" }, ErrEmptyPlan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			if err := m.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestJoinedAfter tests the recent-join cutoff.
func TestJoinedAfter(t *testing.T) {
	cutoff := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt string
		want      bool
	}{
		{"after cutoff", "2026-08-25T10:00:00Z", true},
		{"exactly at cutoff", "2026-08-23T00:00:00Z", true},
		{"before cutoff", "2026-08-20T10:00:00Z", false},
		{"unparseable", "yesterday", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Member{CreatedAt: tt.createdAt}
			if got := m.JoinedAfter(cutoff); got != tt.want {
				t.Errorf("JoinedAfter() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestJoinedOn tests calendar-day matching.
func TestJoinedOn(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt string
		want      bool
	}{
		{"same day morning", "2026-08-30T01:00:00Z", true},
		{"same day night", "2026-08-30T23:59:59Z", true},
		{"day before", "2026-08-29T23:59:59Z", false},
		{"day after", "2026-08-31T00:00:00Z", false},
		{"unparseable", "nope", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Member{CreatedAt: tt.createdAt}
			if got := m.JoinedOn(day); got != tt.want {
				t.Errorf("JoinedOn() = %v, want %v", got, tt.want)
			}
		})
	}
}
