package redis

import "errors"

var (
	// ErrInvalidConnectionURL indicates an unparseable redis connection string
	ErrInvalidConnectionURL = errors.New("redis.invalid_connection_url")

	// ErrNotReady indicates redis did not become reachable within the allotted attempts
	ErrNotReady = errors.New("redis.not_ready")

	// ErrHealthcheckFailed indicates a failed liveness ping
	ErrHealthcheckFailed = errors.New("redis.healthcheck_failed")
)
