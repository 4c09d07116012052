package orchestrators

import (
	"context"
	"log/slog"

	"gymverse/internal/domain/credential"
)

// AuthStoreForChangePassword defines the store interface needed by ChangePassword.
type AuthStoreForChangePassword interface {
	GetCredentials(ctx context.Context) (credential.Credentials, bool, error)
	PutCredentials(ctx context.Context, creds credential.Credentials) error
	DeleteSession(ctx context.Context) error
}

// ChangePasswordInput carries input for the change-password orchestrator.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// ChangePasswordDeps holds dependencies for ChangePassword.
type ChangePasswordDeps struct {
	AuthStore AuthStoreForChangePassword
}

// ExecuteChangePassword verifies the current password and replaces the
// credential record with a freshly salted one. The active session is
// destroyed so the admin must log in again with the new password.
// PRE: A credential record exists
// POST: Credentials carry a new salt and hash; no session exists
func ExecuteChangePassword(ctx context.Context, input ChangePasswordInput, deps ChangePasswordDeps) error {
	creds, ok, err := deps.AuthStore.GetCredentials(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return credential.ErrInvalidPassword
	}

	if err := creds.CheckPassword(input.CurrentPassword); err != nil {
		return err
	}
	if len(input.NewPassword) < credential.MinPasswordLength {
		return credential.ErrPasswordTooShort
	}
	if input.NewPassword != input.ConfirmPassword {
		return credential.ErrPasswordMismatch
	}

	next := credential.New(creds.User, input.NewPassword, timeNow())
	if err := deps.AuthStore.PutCredentials(ctx, next); err != nil {
		return err
	}
	if err := deps.AuthStore.DeleteSession(ctx); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "password_changed", "user", creds.User)
	return nil
}
