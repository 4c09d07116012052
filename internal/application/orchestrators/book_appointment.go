package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymverse/internal/domain/appointment"
	"gymverse/internal/domain/record"
)

// AppointmentStoreForBooking defines the store interface needed by BookAppointment.
type AppointmentStoreForBooking interface {
	Append(ctx context.Context, value appointment.Appointment) error
}

// BookAppointmentInput carries input from the public booking form.
type BookAppointmentInput struct {
	MemberName string
	Email      string
	Phone      string
	Date       string
	Time       string
	Trainer    string
	Purpose    string
	Message    string
}

// BookAppointmentDeps holds dependencies for BookAppointment.
type BookAppointmentDeps struct {
	AppointmentStore AppointmentStoreForBooking
}

// ExecuteBookAppointment records a new appointment request. Every booking
// starts Pending; the admin confirms or cancels it later.
// POST: Appointment is persisted with Pending status
func ExecuteBookAppointment(ctx context.Context, input BookAppointmentInput, deps BookAppointmentDeps) (appointment.Appointment, error) {
	a := appointment.Appointment{
		ID:         record.NewID(),
		CreatedAt:  timeNow().UTC().Format(time.RFC3339),
		MemberName: input.MemberName,
		Email:      input.Email,
		Phone:      input.Phone,
		Date:       input.Date,
		Time:       input.Time,
		Trainer:    input.Trainer,
		Purpose:    input.Purpose,
		Message:    input.Message,
		Status:     appointment.StatusPending,
	}
	if err := a.Validate(); err != nil {
		return appointment.Appointment{}, err
	}

	if err := deps.AppointmentStore.Append(ctx, a); err != nil {
		return appointment.Appointment{}, err
	}
	slog.Info("intake_event", "event", "appointment_booked", "id", a.ID, "trainer", a.Trainer, "date", a.Date)
	return a, nil
}
