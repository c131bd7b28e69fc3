package csrf

import "errors"

var (
	// ErrMissingToken indicates the request carried no submitted token
	ErrMissingToken = errors.New("csrf.token_missing")

	// ErrMalformedToken indicates a submitted token that cannot be decoded
	ErrMalformedToken = errors.New("csrf.token_malformed")

	// ErrTokenMismatch indicates the submitted token does not match the canonical secret
	ErrTokenMismatch = errors.New("csrf.token_mismatch")

	// ErrOriginMismatch indicates the request origin is not in the trusted set
	ErrOriginMismatch = errors.New("csrf.origin_mismatch")

	// ErrSessionUnavailable indicates session-backed storage is active but no session exists
	ErrSessionUnavailable = errors.New("csrf.session_unavailable")

	// ErrSecretNotFound indicates no canonical secret is stored for the request identity
	ErrSecretNotFound = errors.New("csrf.secret_not_found")

	// ErrCapabilityConflict indicates contradictory capability tags on the same route
	ErrCapabilityConflict = errors.New("csrf.capability_conflict")
)
