package csrf_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/csrfkit/pkg/csrf"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := csrf.DefaultConfig()

	assert.Equal(t, "csrftoken", cfg.CookieName)
	assert.Equal(t, "X-CSRFToken", cfg.HeaderName)
	assert.Equal(t, "csrfmiddlewaretoken", cfg.FieldName)
	assert.Equal(t, csrf.ModeCookie, cfg.Mode)
	assert.False(t, cfg.CookieHTTPOnly, "cookie must stay readable for JS echo workflows by default")
	assert.False(t, cfg.TestBypass, "bypass is never default-on")
}

func TestConfig_SameSite(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value string
		want  http.SameSite
	}{
		{"lax", http.SameSiteLaxMode},
		{"strict", http.SameSiteStrictMode},
		{"none", http.SameSiteNoneMode},
		{"", http.SameSiteLaxMode},
		{"bogus", http.SameSiteLaxMode},
	}

	for _, tt := range tests {
		cfg := csrf.Config{CookieSameSite: tt.value}
		assert.Equal(t, tt.want, cfg.SameSite(), "value %q", tt.value)
	}
}
