package csrf

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/csrfkit/pkg/cookie"
	"github.com/dmitrymomot/csrfkit/pkg/session"
)

// Option is a functional option for configuring the Protection.
type Option func(*Protection)

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(p *Protection) { p.config = config }
}

// WithCookieManager sets the cookie manager used by the cookie-backed store.
func WithCookieManager(cookies *cookie.Manager) Option {
	return func(p *Protection) { p.cookieManager = cookies }
}

// WithSessionManager sets the session manager used by the session-backed
// store and switches the protection to session mode.
func WithSessionManager(manager *session.Manager) Option {
	return func(p *Protection) {
		p.sessionManager = manager
		p.config.Mode = ModeSession
	}
}

// WithStore sets a custom secret store, overriding the mode-derived default.
func WithStore(store Store) Option {
	return func(p *Protection) { p.store = store }
}

// WithRegistry sets a pre-populated capability registry.
func WithRegistry(registry *Registry) Option {
	return func(p *Protection) { p.registry = registry }
}

// WithHeaderName sets the submitted-token header name.
func WithHeaderName(name string) Option {
	return func(p *Protection) { p.config.HeaderName = name }
}

// WithFieldName sets the hidden form field name.
func WithFieldName(name string) Option {
	return func(p *Protection) { p.config.FieldName = name }
}

// WithCookieName sets the token cookie name.
func WithCookieName(name string) Option {
	return func(p *Protection) { p.config.CookieName = name }
}

// WithTrustedOrigins sets the allow-list for the secure-transport origin
// check, e.g. "https://app.example.com".
func WithTrustedOrigins(origins ...string) Option {
	return func(p *Protection) { p.config.TrustedOrigins = origins }
}

// WithFailureHandler sets a custom handler for rejected requests, replacing
// the default 403 response.
func WithFailureHandler(h http.Handler) Option {
	return func(p *Protection) { p.failure = h }
}

// WithLogger sets the logger for validation warnings.
func WithLogger(log *slog.Logger) Option {
	return func(p *Protection) {
		if log != nil {
			p.log = log
		}
	}
}
