package middleware

import (
	"context"
	"net/http"
	"time"

	"gymverse/internal/domain/session"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// SessionReader loads and invalidates the persisted admin session. A single
// session exists at a time; the cookie token must match it.
type SessionReader interface {
	GetSession(ctx context.Context) (session.Session, bool, error)
	DeleteSession(ctx context.Context) error
}

const sessionCookieName = "gymverse_session"

// Auth returns middleware that validates the session cookie against the
// stored session and sets it in context. An expired stored session is
// removed on the spot. It does NOT block unauthenticated requests — use
// RequireAuth for that.
func Auth(store SessionReader, now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				sess, ok, serr := store.GetSession(r.Context())
				if serr == nil && ok {
					if !sess.IsValid(now()) {
						_ = store.DeleteSession(r.Context())
					} else if sess.Token == cookie.Value {
						ctx := context.WithValue(r.Context(), sessionContextKey, sess)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns middleware that blocks unauthenticated requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(session.Session)
	return sess, ok
}

// SetSessionCookie sets the session cookie on the response, expiring with
// the session itself.
func SetSessionCookie(w http.ResponseWriter, sess session.Session, now time.Time) {
	maxAge := int(time.Duration(sess.ExpiresAt-now.UnixMilli()) * time.Millisecond / time.Second)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.Token,
		HttpOnly: true,
		Secure:   false, // Allow HTTP for local development
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   maxAge,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// ContextWithSession returns a context with the given session set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}
