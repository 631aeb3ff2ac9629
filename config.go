package main

import "time"

type Config struct {
	Port         string `env:"PORT" env-default:"3000"`
	DatabasePath string `env:"DBPATH" env-default:"guestpass.db"`
	FQDN         string `env:"FQDN" env-default:"localhost:3000"`

	// Secret signs verified assertions, Pepper keys the token secret
	// hashes. Rotating the pepper invalidates every outstanding link.
	Secret string `env:"SECRET" env-required:"true"`
	Pepper string `env:"PEPPER" env-required:"true"`

	// ApiKey guards the staff endpoints; leaving it empty disables them.
	ApiKey string `env:"API_KEY"`

	SmtpServer   string `env:"SMTP_SERVER"`
	SmtpPort     int    `env:"SMTP_PORT" env-default:"587"`
	SmtpUser     string `env:"SMTP_USER"`
	SmtpPassword string `env:"SMTP_PASSWORD"`

	TokenTTL    time.Duration `env:"TOKEN_TTL" env-default:"720h"`
	ForwardTTL  time.Duration `env:"FORWARD_TTL" env-default:"168h"`
	MaxDepth    int           `env:"MAX_CHAIN_DEPTH" env-default:"5"`
	MaxChildren int           `env:"MAX_CHAIN_FANOUT" env-default:"10"`

	OtpTTL           time.Duration `env:"OTP_TTL" env-default:"10m"`
	OtpMaxAttempts   int           `env:"OTP_MAX_ATTEMPTS" env-default:"5"`
	OtpCooldown      time.Duration `env:"OTP_COOLDOWN" env-default:"30s"`
	OtpRatePerMinute int           `env:"OTP_RATE_PER_MINUTE" env-default:"6"`
	OtpRateBurst     int           `env:"OTP_RATE_BURST" env-default:"3"`
}
