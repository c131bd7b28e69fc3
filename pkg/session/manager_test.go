package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csrfkit/pkg/cookie"
	"github.com/dmitrymomot/csrfkit/pkg/session"
)

func setupManager(t *testing.T) *session.Manager {
	t.Helper()

	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough!"})
	require.NoError(t, err)

	return session.New(
		session.WithCookieManager(cookieMgr),
		session.WithConfig(session.Config{
			CookieName:      "test-sid",
			TTL:             time.Hour,
			CleanupInterval: 0, // no background cleanup in tests
		}),
	)
}

func carryCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestManager_Ensure(t *testing.T) {
	manager := setupManager(t)
	ctx := context.Background()

	t.Run("creates new session", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)

		sess, err := manager.Ensure(ctx, w, r)
		require.NoError(t, err)
		assert.False(t, sess.IsAuthenticated())
		assert.NotEmpty(t, sess.Token)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "test-sid", cookies[0].Name)
	})

	t.Run("returns existing session", func(t *testing.T) {
		w := httptest.NewRecorder()
		first, err := manager.Ensure(ctx, w, httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		second, err := manager.Ensure(ctx, httptest.NewRecorder(), carryCookies(t, w))
		require.NoError(t, err)
		assert.Equal(t, first.Token, second.Token)
	})
}

func TestManager_Authenticate(t *testing.T) {
	manager := setupManager(t)
	ctx := context.Background()
	userID := uuid.New()

	w := httptest.NewRecorder()
	anon, err := manager.Ensure(ctx, w, httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	w2 := httptest.NewRecorder()
	authed, err := manager.Authenticate(ctx, w2, carryCookies(t, w), userID)
	require.NoError(t, err)
	assert.True(t, authed.IsAuthenticated())

	// Login must rotate the session token.
	assert.NotEqual(t, anon.Token, authed.Token)

	// The old token must be gone from the store.
	_, err = manager.Get(ctx, carryCookies(t, w))
	assert.Error(t, err)
}

func TestManager_Destroy(t *testing.T) {
	manager := setupManager(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	_, err := manager.Ensure(ctx, w, httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	r := carryCookies(t, w)
	w2 := httptest.NewRecorder()
	require.NoError(t, manager.Destroy(ctx, w2, r))

	_, err = manager.Get(ctx, r)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManager_SetValue(t *testing.T) {
	manager := setupManager(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	require.NoError(t, manager.Set(ctx, w, r, "lang", "en"))

	sess, err := manager.Get(ctx, carryCookies(t, w))
	require.NoError(t, err)

	lang, ok := sess.GetString("lang")
	assert.True(t, ok)
	assert.Equal(t, "en", lang)
}

func TestManager_Middleware(t *testing.T) {
	manager := setupManager(t)

	var sawSession bool
	handler := manager.EnsureSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawSession = session.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.True(t, sawSession)
	assert.Equal(t, http.StatusOK, w.Code)
}
