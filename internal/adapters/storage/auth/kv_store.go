package auth

import (
	"context"

	"gymverse/internal/adapters/storage"
	"gymverse/internal/domain/credential"
	"gymverse/internal/domain/session"
)

// KVStore implements Store on the key-value port. Credentials and the
// session live under their own keys, separate from entity data, so a data
// wipe leaves the admin account intact.
type KVStore struct {
	kv storage.KV
}

// NewKVStore creates a new auth store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// GetCredentials loads the stored admin credentials. The second return is
// false when no usable credential record exists.
func (s *KVStore) GetCredentials(ctx context.Context) (credential.Credentials, bool, error) {
	var creds credential.Credentials
	if !storage.ReadJSON(ctx, s.kv, storage.KeyCredentials, &creds) {
		return credential.Credentials{}, false, nil
	}
	if !creds.IsComplete() {
		return credential.Credentials{}, false, nil
	}
	return creds, true, nil
}

// PutCredentials stores the admin credentials.
// PRE: creds is complete
func (s *KVStore) PutCredentials(ctx context.Context, creds credential.Credentials) error {
	return storage.WriteJSON(ctx, s.kv, storage.KeyCredentials, creds)
}

// GetSession loads the active session. The second return is false when no
// session record exists.
func (s *KVStore) GetSession(ctx context.Context) (session.Session, bool, error) {
	var sess session.Session
	if !storage.ReadJSON(ctx, s.kv, storage.KeySession, &sess) {
		return session.Session{}, false, nil
	}
	return sess, true, nil
}

// PutSession stores the session, replacing any previous one.
// INVARIANT: At most one session exists at a time
func (s *KVStore) PutSession(ctx context.Context, sess session.Session) error {
	return storage.WriteJSON(ctx, s.kv, storage.KeySession, sess)
}

// DeleteSession removes the active session.
func (s *KVStore) DeleteSession(ctx context.Context) error {
	return s.kv.Delete(ctx, storage.KeySession)
}
