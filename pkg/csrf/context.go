package csrf

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
)

type stateContextKey struct{}

// requestState tracks per-request token activity. Each request is handled by
// a single goroutine, so no locking is needed; the state never outlives the
// request and is never persisted.
type requestState struct {
	protection *Protection
	secret     []byte
	issued     bool
}

func withState(ctx context.Context, st *requestState) context.Context {
	return context.WithValue(ctx, stateContextKey{}, st)
}

func stateFromContext(ctx context.Context) (*requestState, bool) {
	st, ok := ctx.Value(stateContextKey{}).(*requestState)
	return st, ok
}

// Token returns a masked token for embedding in the response. The first call
// lazily issues a secret if none is stored yet, which marks the request so
// the middleware sets the token cookie on the way out. Each call applies a
// fresh mask, so repeated renders of the same page carry different byte
// sequences.
//
// Returns "" when the request did not pass through the protection middleware.
func Token(r *http.Request) string {
	st, ok := stateFromContext(r.Context())
	if !ok {
		return ""
	}
	return Mask(st.protection.ensureSecret(r.Context(), r, st))
}

// TemplateField renders a hidden form input carrying a masked token, for
// inclusion in HTML forms. Call once per rendered form.
func TemplateField(r *http.Request) template.HTML {
	st, ok := stateFromContext(r.Context())
	if !ok {
		return ""
	}
	// Field name comes from startup config and the token is base64url, so
	// the markup needs no escaping.
	return template.HTML(fmt.Sprintf(`<input type="hidden" name="%s" value="%s">`, st.protection.config.FieldName, Token(r)))
}

// Rotate discards the current secret and issues a fresh one, invalidating
// every previously handed-out token for this identity. Call it after
// privilege-elevation events such as login to prevent token fixation. The
// new secret is committed with the response; in session-backed mode a login
// that replaces the session discards the old secret by itself.
//
// No-op when the request did not pass through the protection middleware.
func Rotate(r *http.Request) {
	st, ok := stateFromContext(r.Context())
	if !ok {
		return
	}
	st.secret = generateSecret()
	st.issued = true
}
