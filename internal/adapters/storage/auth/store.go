package auth

import (
	"context"

	"gymverse/internal/domain/credential"
	"gymverse/internal/domain/session"
)

// Store persists admin credentials and the single active session.
type Store interface {
	GetCredentials(ctx context.Context) (credential.Credentials, bool, error)
	PutCredentials(ctx context.Context, creds credential.Credentials) error
	GetSession(ctx context.Context) (session.Session, bool, error)
	PutSession(ctx context.Context, sess session.Session) error
	DeleteSession(ctx context.Context) error
}
