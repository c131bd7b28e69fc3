package csrf

import "encoding/base64"

// Mask encodes the secret as mask‖(secret XOR mask) with a freshly drawn
// random mask, base64url-encoded. Every call produces a different byte
// sequence for the same secret, which keeps the secret out of reach of
// compression side-channel attacks (BREACH) on response bodies. Never cache
// the result across renders.
func Mask(secret []byte) string {
	mask := randomBytes(len(secret))
	out := make([]byte, 2*len(secret))
	copy(out, mask)
	for i, b := range secret {
		out[len(secret)+i] = b ^ mask[i]
	}
	return base64.RawURLEncoding.EncodeToString(out)
}

// Unmask recovers the secret from a submitted token. Both the masked form
// produced by Mask and a raw base64url-encoded secret are accepted, so
// clients that echo the cookie value directly keep working. Returns
// ErrMalformedToken for anything that does not decode to one of the two
// valid lengths.
func Unmask(token string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrMalformedToken
	}

	switch len(raw) {
	case SecretLength:
		return raw, nil
	case 2 * SecretLength:
		secret := make([]byte, SecretLength)
		for i := range secret {
			secret[i] = raw[i] ^ raw[SecretLength+i]
		}
		return secret, nil
	default:
		return nil, ErrMalformedToken
	}
}
