package csrf

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/dmitrymomot/csrfkit/pkg/cookie"
	"github.com/dmitrymomot/csrfkit/pkg/session"
)

// Store abstracts where the canonical secret lives. Load is read-only;
// Commit is the single write point and runs at most once per request, just
// before the response is committed.
type Store interface {
	// Load returns the canonical secret for the request identity.
	// ErrSecretNotFound when no secret is stored yet, ErrSessionUnavailable
	// when session-backed storage is active and the request has no session.
	Load(ctx context.Context, r *http.Request) ([]byte, error)

	// Commit persists a freshly issued secret for the request identity.
	Commit(ctx context.Context, w http.ResponseWriter, r *http.Request, secret []byte) error
}

// CookieStore keeps the canonical secret directly in the token cookie.
type CookieStore struct {
	cookies *cookie.Manager
	config  Config
}

// NewCookieStore creates a cookie-backed store.
func NewCookieStore(cookies *cookie.Manager, config Config) *CookieStore {
	return &CookieStore{cookies: cookies, config: config}
}

// Load reads the secret from the request cookie. Missing, undecodable, or
// wrong-length values all map to ErrSecretNotFound so a fresh secret gets
// issued instead of failing the request.
func (s *CookieStore) Load(ctx context.Context, r *http.Request) ([]byte, error) {
	var value string
	var err error
	if s.config.CookieSigned {
		value, err = s.cookies.GetSigned(r, s.config.CookieName)
	} else {
		value, err = s.cookies.Get(r, s.config.CookieName)
	}
	if err != nil {
		return nil, ErrSecretNotFound
	}

	secret, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(secret) != SecretLength {
		return nil, ErrSecretNotFound
	}
	return secret, nil
}

// Commit writes the secret cookie with the configured attributes.
func (s *CookieStore) Commit(ctx context.Context, w http.ResponseWriter, r *http.Request, secret []byte) error {
	value := base64.RawURLEncoding.EncodeToString(secret)
	opts := []cookie.Option{
		cookie.WithPath(s.config.CookiePath),
		cookie.WithDomain(s.config.CookieDomain),
		cookie.WithMaxAge(int(s.config.CookieMaxAge.Seconds())),
		cookie.WithHTTPOnly(s.config.CookieHTTPOnly),
		cookie.WithSecure(s.config.CookieSecure),
		cookie.WithSameSite(s.config.SameSite()),
	}

	if s.config.CookieSigned {
		s.cookies.SetSigned(w, s.config.CookieName, value, opts...)
	} else {
		s.cookies.Set(w, s.config.CookieName, value, opts...)
	}
	return nil
}

// SessionStore keeps the canonical secret under a key in the server-side
// session; the cookie only ever carries the session identity.
type SessionStore struct {
	manager *session.Manager
	key     string
}

// NewSessionStore creates a session-backed store.
func NewSessionStore(manager *session.Manager, config Config) *SessionStore {
	return &SessionStore{manager: manager, key: config.SessionKey}
}

// Load reads the secret from the request's session.
func (s *SessionStore) Load(ctx context.Context, r *http.Request) ([]byte, error) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		var err error
		sess, err = s.manager.Get(ctx, r)
		if err != nil {
			return nil, ErrSessionUnavailable
		}
	}

	value, ok := sess.GetString(s.key)
	if !ok {
		return nil, ErrSecretNotFound
	}

	secret, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(secret) != SecretLength {
		return nil, ErrSecretNotFound
	}
	return secret, nil
}

// Commit stores the secret in the session, creating an anonymous session
// when the request has none yet.
func (s *SessionStore) Commit(ctx context.Context, w http.ResponseWriter, r *http.Request, secret []byte) error {
	value := base64.RawURLEncoding.EncodeToString(secret)

	if sess, ok := session.FromContext(r.Context()); ok {
		sess.Set(s.key, value)
		return s.manager.Update(ctx, sess)
	}
	return s.manager.Set(ctx, w, r, s.key, value)
}
