package cookie

import "errors"

var (
	// ErrNoSecret indicates the manager was created without any signing secret
	ErrNoSecret = errors.New("cookie.no_secret")

	// ErrSecretTooShort indicates a signing secret shorter than the required minimum
	ErrSecretTooShort = errors.New("cookie.secret_too_short")

	// ErrCookieNotFound indicates the request carries no cookie with the given name
	ErrCookieNotFound = errors.New("cookie.not_found")

	// ErrInvalidFormat indicates a cookie value that cannot be decoded
	ErrInvalidFormat = errors.New("cookie.invalid_format")

	// ErrInvalidSignature indicates a signed cookie whose MAC does not verify
	ErrInvalidSignature = errors.New("cookie.invalid_signature")

	// ErrDecryptionFailed indicates an encrypted cookie that cannot be opened
	ErrDecryptionFailed = errors.New("cookie.decryption_failed")
)
