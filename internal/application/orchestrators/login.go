package orchestrators

import (
	"context"
	"log/slog"

	"gymverse/internal/domain/credential"
	"gymverse/internal/domain/session"
)

// AuthStoreForLogin defines the store interface needed by Login and Logout.
type AuthStoreForLogin interface {
	GetCredentials(ctx context.Context) (credential.Credentials, bool, error)
	PutSession(ctx context.Context, sess session.Session) error
	DeleteSession(ctx context.Context) error
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	User     string
	Password string
	Remember bool
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AuthStore AuthStoreForLogin
}

// ExecuteLogin checks the credentials and issues a session. Username and
// password failures are reported separately, matching the admin panel's
// field-level error display.
// PRE: A credential record exists
// POST: On success a fresh session replaces any previous one
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (session.Session, error) {
	creds, ok, err := deps.AuthStore.GetCredentials(ctx)
	if err != nil {
		return session.Session{}, err
	}
	if !ok {
		slog.Info("auth_event", "event", "login_failed", "user", input.User, "reason", "no_credentials")
		return session.Session{}, credential.ErrInvalidUsername
	}

	if err := creds.Verify(input.User, input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "user", input.User, "reason", "mismatch")
		return session.Session{}, err
	}

	days := session.DefaultDays
	if input.Remember {
		days = session.RememberDays
	}
	sess := session.New(creds.User, days, timeNow())
	if err := deps.AuthStore.PutSession(ctx, sess); err != nil {
		return session.Session{}, err
	}

	slog.Info("auth_event", "event", "login_success", "user", creds.User, "remember", input.Remember)
	return sess, nil
}

// ExecuteLogout removes the active session. Logging out without a session is
// not an error.
// POST: No session exists
func ExecuteLogout(ctx context.Context, deps LoginDeps) error {
	if err := deps.AuthStore.DeleteSession(ctx); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "logout")
	return nil
}
