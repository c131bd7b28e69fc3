package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the request or token
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session is past its expiry
	ErrSessionExpired = errors.New("session.expired")

	// ErrInvalidSession indicates a malformed or unusable session record
	ErrInvalidSession = errors.New("session.invalid")

	// ErrTokenGeneration indicates the random token source failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")
)
