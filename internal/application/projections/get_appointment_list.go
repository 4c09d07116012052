package projections

import (
	"context"
	"strings"

	"gymverse/internal/domain/appointment"
)

// GetAppointmentListQuery carries input for the appointment list projection.
type GetAppointmentListQuery struct {
	Search string
}

// AppointmentListResult carries the filtered list plus the unfiltered status
// summary shown above it.
type AppointmentListResult struct {
	Appointments []appointment.Appointment
	Total        int
	StatusCounts map[string]int
}

// QueryGetAppointmentList returns the appointments matching the search text,
// newest first, with a status summary over the full book. The search is a
// case-insensitive substring match on member name, email, trainer, purpose,
// and status.
func QueryGetAppointmentList(ctx context.Context, query GetAppointmentListQuery, store AppointmentReader) (AppointmentListResult, error) {
	appointments, err := store.List(ctx)
	if err != nil {
		return AppointmentListResult{}, err
	}

	result := AppointmentListResult{
		Total: len(appointments),
		StatusCounts: map[string]int{
			appointment.StatusPending:   0,
			appointment.StatusConfirmed: 0,
			appointment.StatusDone:      0,
			appointment.StatusCancelled: 0,
		},
	}
	for _, a := range appointments {
		result.StatusCounts[a.EffectiveStatus()]++
	}

	f := strings.ToLower(strings.TrimSpace(query.Search))
	matched := make([]appointment.Appointment, 0, len(appointments))
	for i := len(appointments) - 1; i >= 0; i-- {
		a := appointments[i]
		if f == "" {
			matched = append(matched, a)
			continue
		}
		haystack := strings.ToLower(a.MemberName + " " + a.Email + " " + a.Trainer + " " + a.Purpose + " " + a.Status)
		if strings.Contains(haystack, f) {
			matched = append(matched, a)
		}
	}
	result.Appointments = matched
	return result, nil
}
