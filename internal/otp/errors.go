package otp

import "errors"

var (
	// ErrCooldown means a code was issued too recently for this token.
	ErrCooldown = errors.New("verification code issued too recently")
	// ErrNoActiveChallenge means no code was ever issued for this token.
	ErrNoActiveChallenge = errors.New("no active challenge")
	// ErrChallengeExpired means the code's validity window has passed.
	ErrChallengeExpired = errors.New("challenge expired")
	// ErrInvalidCode means the presented code does not match, or the
	// challenge was already consumed (replay).
	ErrInvalidCode = errors.New("invalid code")
	// ErrTooManyAttempts means the attempt budget is spent; only a fresh
	// issue unlocks verification again.
	ErrTooManyAttempts = errors.New("too many attempts")
	// ErrBadAssertion means a presented assertion does not parse or verify.
	ErrBadAssertion = errors.New("invalid assertion")
)
