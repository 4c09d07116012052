package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymverse/internal/domain/credential"
	"gymverse/internal/domain/session"
)

// TestExecuteLogin_Success tests a correct login issues and stores a session.
func TestExecuteLogin_Success(t *testing.T) {
	timeNow = fixedNow
	defer func() { timeNow = realNow }()

	creds := credential.New("Abdullah", "2410", fixedTime)
	store := &mockAuthStore{creds: &creds}

	sess, err := ExecuteLogin(context.Background(), LoginInput{User: "Abdullah", Password: "2410"}, LoginDeps{AuthStore: store})
	if err != nil {
		t.Fatalf("ExecuteLogin: %v", err)
	}
	if sess.User != "Abdullah" {
		t.Errorf("session user = %q", sess.User)
	}
	if sess.Token == "" {
		t.Error("session has no token")
	}
	if store.sess == nil || store.sess.Token != sess.Token {
		t.Error("session was not persisted")
	}
}

// TestExecuteLogin_Durations tests the remember-me expiry choice.
func TestExecuteLogin_Durations(t *testing.T) {
	timeNow = fixedNow
	defer func() { timeNow = realNow }()

	creds := credential.New("Abdullah", "2410", fixedTime)

	tests := []struct {
		name     string
		remember bool
		days     int
	}{
		{"default one day", false, session.DefaultDays},
		{"remember thirty days", true, session.RememberDays},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockAuthStore{creds: &creds}
			sess, err := ExecuteLogin(context.Background(), LoginInput{User: "Abdullah", Password: "2410", Remember: tt.remember}, LoginDeps{AuthStore: store})
			if err != nil {
				t.Fatal(err)
			}
			want := fixedTime.Add(time.Duration(tt.days) * 24 * time.Hour).UnixMilli()
			if sess.ExpiresAt != want {
				t.Errorf("ExpiresAt = %d, want %d", sess.ExpiresAt, want)
			}
		})
	}
}

// TestExecuteLogin_FieldErrors tests that username and password failures are
// distinguishable.
func TestExecuteLogin_FieldErrors(t *testing.T) {
	timeNow = fixedNow
	defer func() { timeNow = realNow }()

	creds := credential.New("Abdullah", "2410", fixedTime)

	tests := []struct {
		name    string
		input   LoginInput
		wantErr error
	}{
		{"wrong user", LoginInput{User: "admin", Password: "2410"}, credential.ErrInvalidUsername},
		{"wrong password", LoginInput{User: "Abdullah", Password: "0000"}, credential.ErrInvalidPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockAuthStore{creds: &creds}
			_, err := ExecuteLogin(context.Background(), tt.input, LoginDeps{AuthStore: store})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ExecuteLogin = %v, want %v", err, tt.wantErr)
			}
			if store.sess != nil {
				t.Error("session was stored despite failed login")
			}
		})
	}
}

// TestExecuteLogin_NoCredentials tests login against an empty store.
func TestExecuteLogin_NoCredentials(t *testing.T) {
	store := &mockAuthStore{}
	_, err := ExecuteLogin(context.Background(), LoginInput{User: "Abdullah", Password: "2410"}, LoginDeps{AuthStore: store})
	if !errors.Is(err, credential.ErrInvalidUsername) {
		t.Errorf("ExecuteLogin = %v, want ErrInvalidUsername", err)
	}
}

// TestExecuteLogin_ReplacesPreviousSession tests the singleton property.
func TestExecuteLogin_ReplacesPreviousSession(t *testing.T) {
	timeNow = fixedNow
	defer func() { timeNow = realNow }()

	creds := credential.New("Abdullah", "2410", fixedTime)
	old := session.New("Abdullah", session.DefaultDays, fixedTime.Add(-time.Hour))
	store := &mockAuthStore{creds: &creds, sess: &old}

	sess, err := ExecuteLogin(context.Background(), LoginInput{User: "Abdullah", Password: "2410"}, LoginDeps{AuthStore: store})
	if err != nil {
		t.Fatal(err)
	}
	if store.sess.Token == old.Token {
		t.Error("previous session token survived a new login")
	}
	if store.sess.Token != sess.Token {
		t.Error("stored session does not match the returned one")
	}
}

// TestExecuteLogout tests session removal, including without a session.
func TestExecuteLogout(t *testing.T) {
	sess := session.New("Abdullah", session.DefaultDays, fixedTime)
	store := &mockAuthStore{sess: &sess}

	if err := ExecuteLogout(context.Background(), LoginDeps{AuthStore: store}); err != nil {
		t.Fatalf("ExecuteLogout: %v", err)
	}
	if store.sess != nil {
		t.Error("session survived logout")
	}

	if err := ExecuteLogout(context.Background(), LoginDeps{AuthStore: store}); err != nil {
		t.Errorf("logout without a session errored: %v", err)
	}
}
