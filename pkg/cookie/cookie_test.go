package cookie_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrymomot/csrfkit/pkg/cookie"
)

const testSecret = "this-is-a-very-long-secret-key-32-chars-long"

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{"no secrets", nil, cookie.ErrNoSecret},
		{"empty secrets", []string{"", ""}, cookie.ErrNoSecret},
		{"secret too short", []string{"short"}, cookie.ErrSecretTooShort},
		{"valid secret", []string{testSecret}, nil},
		{"rotation pair", []string{testSecret, "another-very-long-secret-key-at-least-32"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.New(tt.secrets)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func roundtrip(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()
	m, err := cookie.New([]string{testSecret})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := httptest.NewRecorder()
	m.Set(w, "theme", "dark", cookie.WithMaxAge(60))

	got, err := m.Get(roundtrip(t, w), "theme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "dark" {
		t.Errorf("Get() = %q, want %q", got, "dark")
	}

	if _, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "theme"); !errors.Is(err, cookie.ErrCookieNotFound) {
		t.Errorf("Get() on empty request error = %v, want ErrCookieNotFound", err)
	}
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	w := httptest.NewRecorder()
	m.Delete(w, "theme")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("MaxAge = %d, want -1", cookies[0].MaxAge)
	}
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	w := httptest.NewRecorder()
	m.SetSigned(w, "uid", "42")

	got, err := m.GetSigned(roundtrip(t, w), "uid")
	if err != nil {
		t.Fatalf("GetSigned() error = %v", err)
	}
	if got != "42" {
		t.Errorf("GetSigned() = %q, want %q", got, "42")
	}
}

func TestManager_SignedTampered(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	w := httptest.NewRecorder()
	m.SetSigned(w, "uid", "42")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		c.Value = strings.Replace(c.Value, ".", "x.", 1)
		r.AddCookie(c)
	}

	if _, err := m.GetSigned(r, "uid"); err == nil {
		t.Error("GetSigned() accepted a tampered value")
	}
}

func TestManager_SignedKeyRotation(t *testing.T) {
	t.Parallel()
	oldMgr, _ := cookie.New([]string{testSecret})

	w := httptest.NewRecorder()
	oldMgr.SetSigned(w, "uid", "42")

	// New manager signs with a fresh key but still verifies the old one.
	newMgr, _ := cookie.New([]string{"another-very-long-secret-key-at-least-32", testSecret})
	got, err := newMgr.GetSigned(roundtrip(t, w), "uid")
	if err != nil {
		t.Fatalf("GetSigned() after rotation error = %v", err)
	}
	if got != "42" {
		t.Errorf("GetSigned() = %q, want %q", got, "42")
	}
}

func TestManager_Encrypted(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	w := httptest.NewRecorder()
	if err := m.SetEncrypted(w, "sid", "opaque-session-token"); err != nil {
		t.Fatalf("SetEncrypted() error = %v", err)
	}

	// The wire value must not leak the plaintext.
	if strings.Contains(w.Result().Cookies()[0].Value, "opaque") {
		t.Error("encrypted cookie value contains plaintext")
	}

	got, err := m.GetEncrypted(roundtrip(t, w), "sid")
	if err != nil {
		t.Fatalf("GetEncrypted() error = %v", err)
	}
	if got != "opaque-session-token" {
		t.Errorf("GetEncrypted() = %q, want %q", got, "opaque-session-token")
	}
}

func TestManager_EncryptedGarbage(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "sid", Value: "not-a-ciphertext"})

	if _, err := m.GetEncrypted(r, "sid"); err == nil {
		t.Error("GetEncrypted() accepted garbage")
	}
}

func TestManager_Attributes(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{testSecret},
		cookie.WithSecure(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)

	w := httptest.NewRecorder()
	m.Set(w, "a", "b", cookie.WithHTTPOnly(false), cookie.WithPath("/app"))

	c := w.Result().Cookies()[0]
	if !c.Secure {
		t.Error("Secure not applied from manager defaults")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Error("SameSite not applied from manager defaults")
	}
	if c.HttpOnly {
		t.Error("per-call HttpOnly override not applied")
	}
	if c.Path != "/app" {
		t.Errorf("Path = %q, want %q", c.Path, "/app")
	}
}
