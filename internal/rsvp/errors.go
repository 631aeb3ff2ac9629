package rsvp

import "errors"

var (
	// ErrTokenMismatch means the assertion was verified for a different
	// token than the one being responded to.
	ErrTokenMismatch = errors.New("assertion does not match token")
	// ErrStaleAssertion means the assertion's verification happened too long
	// ago to still authorize a write.
	ErrStaleAssertion = errors.New("assertion is stale")
	// ErrInvalidStatus means the submitted status is not one a guest can
	// choose.
	ErrInvalidStatus = errors.New("invalid rsvp status")
)
