package webserver

import "time"

type Config struct {
	// FQDN is the host name external recipients reach the service on; share
	// URLs are built against it.
	FQDN string
	// Secret signs verified assertions; Pepper keys the token secret
	// hashes.
	Secret []byte
	Pepper []byte
	// APIKey guards the staff endpoints. Empty disables them entirely.
	APIKey string

	TokenTTL    time.Duration
	ForwardTTL  time.Duration
	MaxDepth    int
	MaxChildren int

	OtpTTL         time.Duration
	OtpMaxAttempts int
	OtpCooldown    time.Duration

	// OtpRatePerMinute bounds per-client calls to the code issue endpoint
	// on top of the per-token cooldown.
	OtpRatePerMinute int
	OtpRateBurst     int
}
