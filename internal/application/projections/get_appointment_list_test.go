package projections

import (
	"context"
	"testing"

	"gymverse/internal/domain/appointment"
)

func appointmentListStore() stubAppointmentReader {
	return stubAppointmentReader{appointments: []appointment.Appointment{
		{ID: "a1", MemberName: "Ali", Email: "ali@example.com", Trainer: "Ayesha Khan", Purpose: "Form check", Status: appointment.StatusPending},
		{ID: "a2", MemberName: "Sana", Email: "sana@example.com", Trainer: "Hamza Ali", Purpose: "Cutting plan", Status: appointment.StatusConfirmed},
		{ID: "a3", MemberName: "Omar", Email: "omar@example.com", Trainer: "Ayesha Khan", Purpose: "Posture", Status: "weird"},
	}}
}

// TestQueryGetAppointmentList_SummaryOverFullBook tests that the status
// summary ignores the search filter and folds unknown statuses into Pending.
func TestQueryGetAppointmentList_SummaryOverFullBook(t *testing.T) {
	result, err := QueryGetAppointmentList(context.Background(), GetAppointmentListQuery{Search: "sana"}, appointmentListStore())
	if err != nil {
		t.Fatal(err)
	}

	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
	if len(result.Appointments) != 1 || result.Appointments[0].ID != "a2" {
		t.Errorf("filtered list = %+v", result.Appointments)
	}
	if result.StatusCounts[appointment.StatusPending] != 2 {
		t.Errorf("Pending count = %d, want 2", result.StatusCounts[appointment.StatusPending])
	}
	if result.StatusCounts[appointment.StatusConfirmed] != 1 {
		t.Errorf("Confirmed count = %d, want 1", result.StatusCounts[appointment.StatusConfirmed])
	}
}

// TestQueryGetAppointmentList_NewestFirst tests booking-order reversal.
func TestQueryGetAppointmentList_NewestFirst(t *testing.T) {
	result, err := QueryGetAppointmentList(context.Background(), GetAppointmentListQuery{}, appointmentListStore())
	if err != nil {
		t.Fatal(err)
	}
	wantIDs := []string{"a3", "a2", "a1"}
	for i, id := range wantIDs {
		if result.Appointments[i].ID != id {
			t.Errorf("result[%d].ID = %s, want %s", i, result.Appointments[i].ID, id)
		}
	}
}

// TestQueryGetAppointmentList_SearchFields tests matching on trainer, purpose,
// and status text.
func TestQueryGetAppointmentList_SearchFields(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{"by trainer", "ayesha", []string{"a3", "a1"}},
		{"by purpose", "cutting", []string{"a2"}},
		{"by raw status text", "weird", []string{"a3"}},
		{"no match", "swimming", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := QueryGetAppointmentList(context.Background(), GetAppointmentListQuery{Search: tt.search}, appointmentListStore())
			if err != nil {
				t.Fatal(err)
			}
			if len(result.Appointments) != len(tt.wantIDs) {
				t.Fatalf("got %d appointments, want %d", len(result.Appointments), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if result.Appointments[i].ID != id {
					t.Errorf("result[%d].ID = %s, want %s", i, result.Appointments[i].ID, id)
				}
			}
		})
	}
}
