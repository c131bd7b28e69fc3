package csrf

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// Outcome is the result of validating a single request, produced exactly
// once per validated request.
type Outcome uint8

const (
	Accepted Outcome = iota
	MissingToken
	MalformedToken
	TokenMismatch
	OriginMismatch
	SessionUnavailable
)

// String returns the outcome name for logging.
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case MissingToken:
		return "missing_token"
	case MalformedToken:
		return "malformed_token"
	case TokenMismatch:
		return "token_mismatch"
	case OriginMismatch:
		return "origin_mismatch"
	case SessionUnavailable:
		return "session_unavailable"
	default:
		return "unknown"
	}
}

// Err maps the outcome to its sentinel error, nil for Accepted.
func (o Outcome) Err() error {
	switch o {
	case MissingToken:
		return ErrMissingToken
	case MalformedToken:
		return ErrMalformedToken
	case TokenMismatch:
		return ErrTokenMismatch
	case OriginMismatch:
		return ErrOriginMismatch
	case SessionUnavailable:
		return ErrSessionUnavailable
	default:
		return nil
	}
}

// safeMethod reports whether the method has no intended side effects and is
// therefore exempt from enforcement by convention.
func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// validate runs the per-request state machine. Cheap checks (presence,
// format) run before the store lookup and the cryptographic comparison so a
// garbage request never costs session-store I/O; the origin check runs last
// because it is defense-in-depth on top of the token check, not a
// replacement for it.
func (p *Protection) validate(r *http.Request, st *requestState) Outcome {
	if safeMethod(r.Method) {
		return Accepted
	}
	if p.registry.Lookup(r).Has(Exempt) {
		return Accepted
	}
	if p.config.TestBypass {
		return Accepted
	}

	// The cookie value is the canonical side of the exchange; it is never
	// accepted as the submitted proof.
	candidate := r.Header.Get(p.config.HeaderName)
	if candidate == "" {
		candidate = r.PostFormValue(p.config.FieldName)
	}
	if candidate == "" {
		return MissingToken
	}

	submitted, err := Unmask(candidate)
	if err != nil {
		return MalformedToken
	}

	canonical, err := p.store.Load(r.Context(), r)
	if err != nil {
		if errors.Is(err, ErrSessionUnavailable) {
			return SessionUnavailable
		}
		return MissingToken
	}
	st.secret = canonical

	if subtle.ConstantTimeCompare(submitted, canonical) != 1 {
		return TokenMismatch
	}

	// Plaintext referer data is not a trustworthy signal, so the origin
	// check only applies to requests that arrived over TLS.
	if r.TLS != nil && !p.originAllowed(r) {
		return OriginMismatch
	}

	return Accepted
}

func (p *Protection) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		referer := r.Header.Get("Referer")
		if referer == "" {
			return false
		}
		u, err := url.Parse(referer)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		origin = u.Scheme + "://" + u.Host
	}

	origin = strings.ToLower(origin)
	if origin == "https://"+strings.ToLower(r.Host) {
		return true
	}
	_, ok := p.trusted[origin]
	return ok
}
