package orchestrators

import (
	"context"
	"log/slog"

	"gymverse/internal/domain/credential"
)

// Default admin credentials, used only when no credential record exists yet.
// Override via configuration before first start.
const (
	DefaultAdminUser     = "Abdullah"
	DefaultAdminPassword = "2410"
)

// AuthStoreForEnsure defines the store interface needed by EnsureCredentials.
type AuthStoreForEnsure interface {
	GetCredentials(ctx context.Context) (credential.Credentials, bool, error)
	PutCredentials(ctx context.Context, creds credential.Credentials) error
}

// EnsureCredentialsInput carries input for the ensure-credentials orchestrator.
type EnsureCredentialsInput struct {
	User     string
	Password string
}

// EnsureCredentialsDeps holds dependencies for EnsureCredentials.
type EnsureCredentialsDeps struct {
	AuthStore AuthStoreForEnsure
}

// ExecuteEnsureCredentials creates the admin credential record if no complete
// record exists. An incomplete record (missing user, salt, or hash) is
// replaced the same as a missing one.
// POST: A complete credential record exists
// INVARIANT: A complete existing record is never touched
func ExecuteEnsureCredentials(ctx context.Context, input EnsureCredentialsInput, deps EnsureCredentialsDeps) error {
	_, ok, err := deps.AuthStore.GetCredentials(ctx)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	user := input.User
	if user == "" {
		user = DefaultAdminUser
	}
	password := input.Password
	if password == "" {
		password = DefaultAdminPassword
	}

	creds := credential.New(user, password, timeNow())
	if err := deps.AuthStore.PutCredentials(ctx, creds); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "credentials_created", "user", user)
	return nil
}
