package otp

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Assertion is the credential a successful verification yields. It, not the
// raw code, is what the write path demands.
type Assertion struct {
	TokenUUID   string
	ContactUUID string
	VerifiedAt  time.Time
}

// Sign serializes an assertion as an HS256 token expiring after ttl.
func Sign(a Assertion, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"token":       a.TokenUUID,
		"contact":     a.ContactUUID,
		"verified_at": jwt.NewNumericDate(a.VerifiedAt),
		"exp":         jwt.NewNumericDate(a.VerifiedAt.Add(ttl)),
	})

	return claims.SignedString(secret)
}

// Parse verifies a signed assertion and returns its contents. Expired or
// tampered assertions come back as ErrBadAssertion.
func Parse(signed string, secret []byte) (Assertion, error) {
	parsed, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadAssertion
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return Assertion{}, ErrBadAssertion
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Assertion{}, ErrBadAssertion
	}

	return FromClaims(claims)
}

// FromClaims rebuilds an assertion out of already verified JWT claims, as
// left in the request context by the assertion middleware.
func FromClaims(claims jwt.MapClaims) (Assertion, error) {
	tokenUUID, ok := claims["token"].(string)
	if !ok {
		return Assertion{}, ErrBadAssertion
	}
	contactUUID, ok := claims["contact"].(string)
	if !ok {
		return Assertion{}, ErrBadAssertion
	}
	verifiedAt, ok := claims["verified_at"].(float64)
	if !ok {
		return Assertion{}, ErrBadAssertion
	}

	return Assertion{
		TokenUUID:   tokenUUID,
		ContactUUID: contactUUID,
		VerifiedAt:  time.Unix(int64(verifiedAt), 0).UTC(),
	}, nil
}
