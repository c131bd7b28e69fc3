package csrf

import (
	"net/http"
	"time"
)

// Mode selects where the canonical secret lives.
type Mode string

const (
	// ModeCookie keeps the secret directly in the token cookie.
	ModeCookie Mode = "cookie"
	// ModeSession keeps the secret in the server-side session; the cookie
	// only carries the session identity.
	ModeSession Mode = "session"
)

// Config holds CSRF protection configuration. It is loaded once at process
// start and treated as immutable afterwards, so it is safe to share across
// concurrent requests without synchronization.
type Config struct {
	// CookieName is the name of the token cookie (default: "csrftoken")
	CookieName string `env:"CSRF_COOKIE_NAME" envDefault:"csrftoken"`

	// HeaderName carries the submitted token for script-initiated requests
	HeaderName string `env:"CSRF_HEADER_NAME" envDefault:"X-CSRFToken"`

	// FieldName is the hidden form field for traditional form submissions
	FieldName string `env:"CSRF_FIELD_NAME" envDefault:"csrfmiddlewaretoken"`

	// Mode selects cookie-backed or session-backed secret storage
	Mode Mode `env:"CSRF_MODE" envDefault:"cookie"`

	// SessionKey is the session data key used in session mode
	SessionKey string `env:"CSRF_SESSION_KEY" envDefault:"_csrf"`

	CookiePath   string        `env:"CSRF_COOKIE_PATH" envDefault:"/"`
	CookieDomain string        `env:"CSRF_COOKIE_DOMAIN"`
	CookieMaxAge time.Duration `env:"CSRF_COOKIE_MAX_AGE" envDefault:"8760h"`

	// CookieHTTPOnly defaults to off so JavaScript can read the cookie and
	// echo it in the header
	CookieHTTPOnly bool `env:"CSRF_COOKIE_HTTP_ONLY" envDefault:"false"`

	CookieSecure   bool   `env:"CSRF_COOKIE_SECURE" envDefault:"false"`
	CookieSameSite string `env:"CSRF_COOKIE_SAME_SITE" envDefault:"lax"`

	// CookieSigned wraps the cookie value in an HMAC envelope. This makes
	// tampering detectable but breaks clients that echo the raw cookie
	// value, since the signed envelope is not a valid token.
	CookieSigned bool `env:"CSRF_COOKIE_SIGNED" envDefault:"false"`

	// TrustedOrigins is the allow-list for the secure-transport origin check
	TrustedOrigins []string `env:"CSRF_TRUSTED_ORIGINS" envSeparator:","`

	// TestBypass skips validation entirely. Explicit opt-in for tests only;
	// never enable it on a production path.
	TestBypass bool `env:"CSRF_TEST_BYPASS" envDefault:"false"`
}

// DefaultConfig returns the default CSRF configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:     "csrftoken",
		HeaderName:     "X-CSRFToken",
		FieldName:      "csrfmiddlewaretoken",
		Mode:           ModeCookie,
		SessionKey:     "_csrf",
		CookiePath:     "/",
		CookieMaxAge:   365 * 24 * time.Hour,
		CookieSameSite: "lax",
	}
}

// SameSite maps the configured string to the net/http constant.
func (c Config) SameSite() http.SameSite {
	switch c.CookieSameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
