package appointment

import (
	"testing"

	"gymverse/internal/domain/record"
)

// TestNormalize_StatusDefault tests that a missing status key defaults to
// Pending while a present one is kept verbatim.
func TestNormalize_StatusDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  record.Raw
		want string
	}{
		{"missing key", record.Raw{"id": "a1", "name": "Ali"}, StatusPending},
		{"present value kept", record.Raw{"id": "a1", "status": "Confirmed"}, StatusConfirmed},
		{"present empty kept", record.Raw{"id": "a1", "status": ""}, ""},
		{"unknown value kept", record.Raw{"id": "a1", "status": "Maybe"}, "Maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if got.Status != tt.want {
				t.Errorf("Status = %q, want %q", got.Status, tt.want)
			}
		})
	}
}

// TestNormalize_NameAlias tests that the legacy "name" key maps to MemberName.
func TestNormalize_NameAlias(t *testing.T) {
	got := Normalize(record.Raw{"id": "a1", "name": "Ali"})
	if got.MemberName != "Ali" {
		t.Errorf("MemberName = %q, want Ali", got.MemberName)
	}
}

// TestEffectiveStatus tests display status resolution.
func TestEffectiveStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"Pending", StatusPending},
		{"Confirmed", StatusConfirmed},
		{"Done", StatusDone},
		{"Cancelled", StatusCancelled},
		{" Confirmed ", StatusConfirmed},
		{"", StatusPending},
		{"Maybe", StatusPending},
		{"confirmed", StatusPending}, // case matters, unknown counts as Pending
	}
	for _, tt := range tests {
		a := Appointment{Status: tt.status}
		if got := a.EffectiveStatus(); got != tt.want {
			t.Errorf("EffectiveStatus(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

// TestTransition_Table tests the full status state machine.
func TestTransition_Table(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusDone, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusDone, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusDone, StatusCancelled, false},
		{StatusDone, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusDone, false},
	}
	for _, tt := range tests {
		a := Appointment{Status: tt.from}
		err := a.Transition(tt.to)
		if tt.allowed {
			if err != nil {
				t.Errorf("Transition(%s -> %s) = %v, want nil", tt.from, tt.to, err)
			}
			if a.Status != tt.to {
				t.Errorf("Status after transition = %q, want %q", a.Status, tt.to)
			}
		} else {
			if err != ErrInvalidTransition {
				t.Errorf("Transition(%s -> %s) = %v, want ErrInvalidTransition", tt.from, tt.to, err)
			}
			if a.Status != tt.from {
				t.Errorf("Status changed on rejected transition: %q", a.Status)
			}
		}
	}
}

// TestTransition_UnknownTreatedAsPending tests that a record with garbage
// status can still be confirmed.
func TestTransition_UnknownTreatedAsPending(t *testing.T) {
	a := Appointment{Status: "Maybe"}
	if err := a.Transition(StatusConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != StatusConfirmed {
		t.Errorf("Status = %q, want Confirmed", a.Status)
	}
}

// TestValidate tests the booking form intake rules.
func TestValidate(t *testing.T) {
	valid := Appointment{
		MemberName: "Ali", Email: "ali@example.com", Phone: "123",
		Date: "2026-09-01", Time: "10:00", Trainer: "Ayesha Khan", Purpose: "Form check",
	}

	tests := []struct {
		name    string
		mutate  func(a *Appointment)
		wantErr error
	}{
		{"valid", func(a *Appointment) {}, nil},
		{"empty name", func(a *Appointment) { a.MemberName = "" }, ErrEmptyName},
		{"bad email", func(a *Appointment) { a.Email = "x" }, ErrInvalidEmail},
		{"empty phone", func(a *Appointment) { a.Phone = " " }, ErrEmptyPhone},
		{"empty date", func(a *Appointment) { a.Date = "" }, ErrEmptyDate},
		{"empty time", func(a *Appointment) { a.Time = "" }, ErrEmptyTime},
		{"empty trainer", func(a *Appointment) { a.Trainer = "" }, ErrEmptyTrainer},
		{"empty purpose", func(a *Appointment) { a.Purpose = "" }, ErrEmptyPurpose},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			if err := a.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestSortKey tests chronological ordering of zero-padded date and time.
func TestSortKey(t *testing.T) {
	early := Appointment{Date: "2026-09-01", Time: "09:00"}
	late := Appointment{Date: "2026-09-01", Time: "10:00"}
	nextDay := Appointment{Date: "2026-09-02", Time: "08:00"}
	if !(early.SortKey() < late.SortKey()) {
		t.Error("expected earlier time to sort first")
	}
	if !(late.SortKey() < nextDay.SortKey()) {
		t.Error("expected earlier date to sort first")
	}
}
