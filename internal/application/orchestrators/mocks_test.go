package orchestrators

import (
	"context"
	"errors"
	"time"

	"gymverse/internal/adapters/email"
	"gymverse/internal/domain/appointment"
	"gymverse/internal/domain/credential"
	"gymverse/internal/domain/member"
	"gymverse/internal/domain/offer"
	"gymverse/internal/domain/plan"
	"gymverse/internal/domain/session"
	"gymverse/internal/domain/trainer"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

// realNow restores the package clock after a test overrides it.
var realNow = time.Now

var errNotFound = errors.New("not found")

type mockPlanStore struct {
	plans         []plan.Plan
	saved         []plan.Plan
	deleted       []string
	replaceCalled bool
}

func (m *mockPlanStore) List(_ context.Context) ([]plan.Plan, error) {
	return m.plans, nil
}

func (m *mockPlanStore) GetByID(_ context.Context, id string) (plan.Plan, error) {
	for _, p := range m.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return plan.Plan{}, errNotFound
}

func (m *mockPlanStore) Save(_ context.Context, value plan.Plan) error {
	m.saved = append(m.saved, value)
	for i, p := range m.plans {
		if p.ID == value.ID {
			m.plans[i] = value
			return nil
		}
	}
	m.plans = append(m.plans, value)
	return nil
}

func (m *mockPlanStore) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockPlanStore) ReplaceAll(_ context.Context, values []plan.Plan) error {
	m.plans = values
	m.replaceCalled = true
	return nil
}

type mockTrainerStore struct {
	trainers      []trainer.Trainer
	replaceCalled bool
}

func (m *mockTrainerStore) List(_ context.Context) ([]trainer.Trainer, error) {
	return m.trainers, nil
}

func (m *mockTrainerStore) ReplaceAll(_ context.Context, values []trainer.Trainer) error {
	m.trainers = values
	m.replaceCalled = true
	return nil
}

type mockMemberStore struct {
	members  []member.Member
	appended []member.Member
	deleted  []string
}

func (m *mockMemberStore) List(_ context.Context) ([]member.Member, error) {
	return m.members, nil
}

func (m *mockMemberStore) Append(_ context.Context, value member.Member) error {
	m.appended = append(m.appended, value)
	m.members = append(m.members, value)
	return nil
}

func (m *mockMemberStore) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockMemberStore) ReplaceAll(_ context.Context, values []member.Member) error {
	m.members = values
	return nil
}

type mockAppointmentStore struct {
	appointments []appointment.Appointment
	appended     []appointment.Appointment
	saved        []appointment.Appointment
	deleted      []string
	cleared      bool
}

func (m *mockAppointmentStore) List(_ context.Context) ([]appointment.Appointment, error) {
	return m.appointments, nil
}

func (m *mockAppointmentStore) GetByID(_ context.Context, id string) (appointment.Appointment, error) {
	for _, a := range m.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return appointment.Appointment{}, errNotFound
}

func (m *mockAppointmentStore) Append(_ context.Context, value appointment.Appointment) error {
	m.appended = append(m.appended, value)
	m.appointments = append(m.appointments, value)
	return nil
}

func (m *mockAppointmentStore) Save(_ context.Context, value appointment.Appointment) error {
	m.saved = append(m.saved, value)
	for i, a := range m.appointments {
		if a.ID == value.ID {
			m.appointments[i] = value
			return nil
		}
	}
	return errNotFound
}

func (m *mockAppointmentStore) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockAppointmentStore) Clear(_ context.Context) error {
	m.cleared = true
	m.appointments = nil
	return nil
}

func (m *mockAppointmentStore) ReplaceAll(_ context.Context, values []appointment.Appointment) error {
	m.appointments = values
	return nil
}

type mockOfferStore struct {
	offers      []offer.Offer
	appended    []offer.Offer
	initialized bool
}

func (m *mockOfferStore) List(_ context.Context) ([]offer.Offer, error) {
	return m.offers, nil
}

func (m *mockOfferStore) Append(_ context.Context, value offer.Offer) error {
	m.appended = append(m.appended, value)
	m.offers = append(m.offers, value)
	return nil
}

func (m *mockOfferStore) EnsureInitialized(_ context.Context) error {
	m.initialized = true
	return nil
}

func (m *mockOfferStore) ReplaceAll(_ context.Context, values []offer.Offer) error {
	m.offers = values
	return nil
}

type mockAuthStore struct {
	creds          *credential.Credentials
	sess           *session.Session
	credsPuts      int
	sessionDeletes int
}

func (m *mockAuthStore) GetCredentials(_ context.Context) (credential.Credentials, bool, error) {
	if m.creds == nil || !m.creds.IsComplete() {
		return credential.Credentials{}, false, nil
	}
	return *m.creds, true, nil
}

func (m *mockAuthStore) PutCredentials(_ context.Context, creds credential.Credentials) error {
	c := creds
	m.creds = &c
	m.credsPuts++
	return nil
}

func (m *mockAuthStore) GetSession(_ context.Context) (session.Session, bool, error) {
	if m.sess == nil {
		return session.Session{}, false, nil
	}
	return *m.sess, true, nil
}

func (m *mockAuthStore) PutSession(_ context.Context, sess session.Session) error {
	s := sess
	m.sess = &s
	return nil
}

func (m *mockAuthStore) DeleteSession(_ context.Context) error {
	m.sess = nil
	m.sessionDeletes++
	return nil
}

type mockEmailSender struct {
	sent []email.SendRequest
	err  error
}

func (m *mockEmailSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	m.sent = append(m.sent, req)
	if m.err != nil {
		return email.SendResult{}, m.err
	}
	return email.SendResult{MessageID: "msg-1", SentAt: fixedTime}, nil
}
