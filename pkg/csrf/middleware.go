package csrf

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/csrfkit/pkg/cookie"
	"github.com/dmitrymomot/csrfkit/pkg/session"
)

// Protection orchestrates token issuance, validation, and response
// finalization. Construct it once at startup; it holds no mutable state
// shared across requests and is safe for concurrent use.
type Protection struct {
	config         Config
	store          Store
	registry       *Registry
	failure        http.Handler
	log            *slog.Logger
	trusted        map[string]struct{}
	cookieManager  *cookie.Manager
	sessionManager *session.Manager
}

// New creates a Protection with the given options. The default cookie-backed
// mode needs a cookie manager, session mode a session manager; missing either
// is a startup misconfiguration and panics.
func New(opts ...Option) *Protection {
	p := &Protection{
		config:   DefaultConfig(),
		registry: NewRegistry(),
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.failure == nil {
		p.failure = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}

	if p.store == nil {
		switch p.config.Mode {
		case ModeSession:
			if p.sessionManager == nil {
				panic("csrf: session manager is required in session mode")
			}
			p.store = NewSessionStore(p.sessionManager, p.config)
		default:
			if p.cookieManager == nil {
				panic("csrf: cookie manager is required in cookie mode")
			}
			p.store = NewCookieStore(p.cookieManager, p.config)
		}
	}

	p.trusted = make(map[string]struct{}, len(p.config.TrustedOrigins))
	for _, origin := range p.config.TrustedOrigins {
		p.trusted[strings.ToLower(strings.TrimSuffix(origin, "/"))] = struct{}{}
	}

	return p
}

// Registry exposes the capability registry for route registration.
func (p *Protection) Registry() *Registry {
	return p.registry
}

// Middleware validates unsafe-method requests and finalizes token issuance.
// Rejections produce a uniform response via the failure handler; the
// specific outcome is only visible in the log, never to the client, so an
// attacker cannot distinguish a missing token from a wrong one. The failure
// handler short-circuits before the downstream chain, so response-shaping
// layers wrapped inside the middleware never observe a rejected request.
func (p *Protection) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := &requestState{protection: p}
		r = r.WithContext(withState(r.Context(), st))

		if outcome := p.validate(r, st); outcome != Accepted {
			p.log.LogAttrs(r.Context(), slog.LevelWarn, "csrf validation failed",
				slog.String("outcome", outcome.String()),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			p.failure.ServeHTTP(w, r)
			return
		}

		if p.registry.Lookup(r).Has(RequiresToken) {
			p.ensureSecret(r.Context(), r, st)
		}

		fw := &finalizingWriter{ResponseWriter: w, finalize: func() {
			p.finalize(w, r, st)
		}}
		next.ServeHTTP(fw, r)
		fw.commit()
	})
}

// ensureSecret returns the request's canonical secret, loading it from the
// store or lazily issuing a fresh one. Issuance flips the request's issued
// flag exactly once; the finalizer reads it exactly once.
func (p *Protection) ensureSecret(ctx context.Context, r *http.Request, st *requestState) []byte {
	if st.secret != nil {
		return st.secret
	}
	if secret, err := p.store.Load(ctx, r); err == nil {
		st.secret = secret
		return secret
	}
	st.secret = generateSecret()
	st.issued = true
	return st.secret
}

// finalize commits the token cookie and the cache-variance marker when a
// token was issued during this request. Requests that never needed a token
// leave the response untouched, avoiding cookie churn and cache
// fragmentation.
func (p *Protection) finalize(w http.ResponseWriter, r *http.Request, st *requestState) {
	if !st.issued {
		return
	}

	if err := p.store.Commit(r.Context(), w, r, st.secret); err != nil {
		p.log.LogAttrs(r.Context(), slog.LevelError, "csrf token commit failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		return
	}

	// Responses carrying one identity's token must never be served to
	// another identity from a shared cache.
	w.Header().Add("Vary", "Cookie")
}

// finalizingWriter runs the finalize hook once, right before the first byte
// of the response is committed. A request that errors out or is cancelled
// before anything is written performs no persisted side effect.
type finalizingWriter struct {
	http.ResponseWriter
	finalize  func()
	committed bool
}

func (w *finalizingWriter) WriteHeader(code int) {
	w.commit()
	w.ResponseWriter.WriteHeader(code)
}

func (w *finalizingWriter) Write(b []byte) (int, error) {
	w.commit()
	return w.ResponseWriter.Write(b)
}

func (w *finalizingWriter) commit() {
	if w.committed {
		return
	}
	w.committed = true
	w.finalize()
}

// Flush implements http.Flusher when the underlying writer does.
func (w *finalizingWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
