package token

import "errors"

var (
	// ErrNotFound means no token matches the presented secret.
	ErrNotFound = errors.New("token not found")
	// ErrExpired means the token's validity window has passed.
	ErrExpired = errors.New("token expired")
	// ErrRevoked means the token was revoked.
	ErrRevoked = errors.New("token revoked")
	// ErrDepthExceeded means forwarding would push the chain past the
	// configured maximum depth.
	ErrDepthExceeded = errors.New("chain depth exceeded")
	// ErrFanOutExceeded means the token already forwarded to the configured
	// maximum number of recipients.
	ErrFanOutExceeded = errors.New("chain fan-out exceeded")
)
