package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"gymverse/internal/adapters/email"
	"gymverse/internal/domain/appointment"
)

// AppointmentStoreForStatus defines the store interface needed by the
// appointment status orchestrators.
type AppointmentStoreForStatus interface {
	GetByID(ctx context.Context, id string) (appointment.Appointment, error)
	Save(ctx context.Context, value appointment.Appointment) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// AppointmentStatusDeps holds dependencies for the appointment status orchestrators.
type AppointmentStatusDeps struct {
	AppointmentStore AppointmentStoreForStatus
	EmailSender      email.Sender
}

// ExecuteConfirmAppointment moves an appointment to Confirmed and emails the
// member. The email is best effort: a delivery failure does not roll back
// the confirmation.
// PRE: Appointment is Pending
// POST: Appointment is Confirmed; a confirmation email has been attempted
func ExecuteConfirmAppointment(ctx context.Context, id string, deps AppointmentStatusDeps) (appointment.Appointment, error) {
	a, err := deps.AppointmentStore.GetByID(ctx, id)
	if err != nil {
		return appointment.Appointment{}, err
	}
	if err := a.Transition(appointment.StatusConfirmed); err != nil {
		return appointment.Appointment{}, err
	}
	if err := deps.AppointmentStore.Save(ctx, a); err != nil {
		return appointment.Appointment{}, err
	}
	slog.Info("appointment_event", "event", "confirmed", "id", a.ID, "trainer", a.Trainer)

	if deps.EmailSender != nil && a.Email != "" {
		_, err := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{a.Email},
			Subject: "Your training session is confirmed",
			HTML: fmt.Sprintf(
				"<p>Hi %s,</p><p>Your session with %s on %s at %s is confirmed.</p><p>See you at the gym!</p>",
				a.MemberName, a.Trainer, a.Date, a.Time),
		})
		if err != nil {
			slog.Warn("appointment_event", "event", "confirmation_email_failed", "id", a.ID, "error", err)
		}
	}
	return a, nil
}

// ExecuteCompleteAppointment moves a Confirmed appointment to Done.
// PRE: Appointment is Confirmed
func ExecuteCompleteAppointment(ctx context.Context, id string, deps AppointmentStatusDeps) (appointment.Appointment, error) {
	return transition(ctx, id, appointment.StatusDone, deps)
}

// ExecuteCancelAppointment cancels a Pending or Confirmed appointment.
// PRE: Appointment is not Done or Cancelled
func ExecuteCancelAppointment(ctx context.Context, id string, deps AppointmentStatusDeps) (appointment.Appointment, error) {
	return transition(ctx, id, appointment.StatusCancelled, deps)
}

func transition(ctx context.Context, id, next string, deps AppointmentStatusDeps) (appointment.Appointment, error) {
	a, err := deps.AppointmentStore.GetByID(ctx, id)
	if err != nil {
		return appointment.Appointment{}, err
	}
	if err := a.Transition(next); err != nil {
		return appointment.Appointment{}, err
	}
	if err := deps.AppointmentStore.Save(ctx, a); err != nil {
		return appointment.Appointment{}, err
	}
	slog.Info("appointment_event", "event", "status_changed", "id", a.ID, "status", a.Status)
	return a, nil
}

// ExecuteDeleteAppointment removes a single appointment regardless of status.
func ExecuteDeleteAppointment(ctx context.Context, id string, deps AppointmentStatusDeps) error {
	if err := deps.AppointmentStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("appointment_event", "event", "deleted", "id", id)
	return nil
}

// ExecuteClearAppointments removes every appointment.
// POST: The appointment book is empty
func ExecuteClearAppointments(ctx context.Context, deps AppointmentStatusDeps) error {
	if err := deps.AppointmentStore.Clear(ctx); err != nil {
		return err
	}
	slog.Info("appointment_event", "event", "cleared")
	return nil
}
