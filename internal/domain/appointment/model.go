package appointment

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"gymverse/internal/domain/record"
)

// Status constants. An appointment starts Pending, is Confirmed by an admin,
// then marked Done. Cancellation is possible until the session has happened.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusDone      = "Done"
	StatusCancelled = "Cancelled"
)

// ValidStatuses contains all valid status values.
var ValidStatuses = []string{StatusPending, StatusConfirmed, StatusDone, StatusCancelled}

// transitions is the closed set of allowed status changes.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusDone, StatusCancelled},
	StatusDone:      {},
	StatusCancelled: {},
}

// Domain errors
var (
	ErrEmptyName         = errors.New("name is required")
	ErrInvalidEmail      = errors.New("valid email is required")
	ErrEmptyPhone        = errors.New("phone is required")
	ErrEmptyDate         = errors.New("date is required")
	ErrEmptyTime         = errors.New("time is required")
	ErrEmptyTrainer      = errors.New("please select a trainer")
	ErrEmptyPurpose      = errors.New("purpose is required")
	ErrInvalidTransition = errors.New("invalid appointment status transition")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// timeNow is a variable for testability.
var timeNow = time.Now

// Appointment is a training session request captured through the public
// booking form. Trainer references a trainer by name, not by id.
type Appointment struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"createdAt"`
	MemberName string `json:"memberName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Trainer    string `json:"trainer"`
	Purpose    string `json:"purpose"`
	Message    string `json:"message"`
	Status     string `json:"status"`
}

// Normalize reconciles a loosely-shaped appointment record into canonical
// form. A missing status defaults to Pending.
// PRE: raw is a decoded JSON object or nil
// POST: Returns nil for nil input; otherwise a canonical record with identity
// INVARIANT: Normalizing an already-canonical record yields the same record
func Normalize(raw record.Raw) *Appointment {
	if raw == nil {
		return nil
	}
	createdAt := raw.String("createdAt")
	if createdAt == "" {
		createdAt = timeNow().UTC().Format(time.RFC3339)
	}
	status := StatusPending
	if _, ok := raw["status"]; ok {
		status = raw.String("status")
	}
	return &Appointment{
		ID:         raw.ID(),
		CreatedAt:  createdAt,
		MemberName: raw.String("memberName", "name"),
		Email:      raw.String("email"),
		Phone:      raw.String("phone"),
		Date:       raw.String("date"),
		Time:       raw.String("time"),
		Trainer:    raw.String("trainer"),
		Purpose:    raw.String("purpose"),
		Message:    raw.String("message"),
		Status:     status,
	}
}

// Validate checks the intake rules for the public booking form.
// PRE: Appointment struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Appointment) Validate() error {
	if strings.TrimSpace(a.MemberName) == "" {
		return ErrEmptyName
	}
	if !emailPattern.MatchString(a.Email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(a.Phone) == "" {
		return ErrEmptyPhone
	}
	if a.Date == "" {
		return ErrEmptyDate
	}
	if a.Time == "" {
		return ErrEmptyTime
	}
	if strings.TrimSpace(a.Trainer) == "" {
		return ErrEmptyTrainer
	}
	if strings.TrimSpace(a.Purpose) == "" {
		return ErrEmptyPurpose
	}
	return nil
}

// EffectiveStatus returns the status for display and aggregation purposes.
// Unknown or blank values count as Pending.
// INVARIANT: Appointment fields are not mutated
func (a *Appointment) EffectiveStatus() string {
	s := strings.TrimSpace(a.Status)
	for _, valid := range ValidStatuses {
		if s == valid {
			return s
		}
	}
	return StatusPending
}

// CanTransition reports whether a status change is allowed.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition moves the appointment to a new status, rejecting changes the
// state machine does not allow. The guard lives here rather than in the UI so
// the invariant holds for every caller.
// PRE: next is one of the status constants
// POST: Status is set to next, or an error is returned and nothing changes
func (a *Appointment) Transition(next string) error {
	if !CanTransition(a.EffectiveStatus(), next) {
		return ErrInvalidTransition
	}
	a.Status = next
	return nil
}

// SortKey orders appointments chronologically when date and time are
// zero-padded fixed-width (ISO date and 24-hour time).
// INVARIANT: Appointment fields are not mutated
func (a *Appointment) SortKey() string {
	return a.Date + a.Time
}
