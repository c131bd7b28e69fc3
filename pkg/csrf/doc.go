// Package csrf provides stateful CSRF protection for HTTP handlers using the
// double-submit pattern with masked tokens.
//
// A per-identity secret is issued lazily the first time a handler asks for a
// token and stored either directly in a cookie or in the server-side session.
// Unsafe-method requests must echo the secret back through a header or a
// hidden form field; the middleware compares the submitted value against the
// canonical secret in constant time and, over TLS, additionally checks the
// declared request origin against a trusted allow-list.
//
// Tokens embedded in responses are masked: every render XORs the secret with
// a fresh random mask, so the same secret never appears twice in a response
// body. This defeats compression side-channel attacks (BREACH) without
// changing the stored secret. The middleware unmasks before comparing and
// also accepts a raw unmasked secret for clients that echo the cookie value
// directly.
//
//	request ──► Registry.Lookup ──► validate ──► handler ──► finalize
//	                 │                  │ fail                  │ issued
//	                 ▼                  ▼                       ▼
//	           capability tag     failure handler        token cookie +
//	        (protect / exempt /      (403, logged)         Vary: Cookie
//	          requires token)
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/csrfkit/pkg/cookie"
//	    "github.com/dmitrymomot/csrfkit/pkg/csrf"
//	)
//
//	cookieMgr, _ := cookie.New([]string{"secret-key-of-at-least-32-chars!"})
//	protection := csrf.New(
//	    csrf.WithCookieManager(cookieMgr),
//	    csrf.WithTrustedOrigins("https://app.example.com"),
//	)
//	protection.Registry().MustRegister("/webhooks/stripe", csrf.Exempt)
//
//	r := chi.NewRouter()
//	r.Use(protection.Middleware)
//	r.Get("/profile", func(w http.ResponseWriter, r *http.Request) {
//	    fmt.Fprintf(w, `<form method="post">%s</form>`, csrf.TemplateField(r))
//	})
//
// Script-initiated requests read the token cookie and send it back in the
// X-CSRFToken header. After login, call csrf.Rotate so tokens issued before
// authentication stop working; in session-backed mode replacing the session
// on login discards the old secret by itself.
//
// Rejected requests receive a uniform 403 (or the configured failure
// handler) regardless of the specific reason; the reason is only written to
// the log so the response cannot be used as an oracle.
package csrf
