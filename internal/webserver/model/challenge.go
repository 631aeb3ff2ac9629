package model

import "time"

// Challenge is a short-lived numeric verification code bound to a token and
// a declared contact identity. The code itself is stored as an argon2id hash
// with a per-challenge salt.
type Challenge struct {
	ID          uint `gorm:"primarykey"`
	TokenID     uint `gorm:"index; not null"`
	ContactUUID string
	CodeHash    string `gorm:"not null"`
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Attempts    int
	Consumed    bool
}

// Expired reports whether the challenge's validity window has passed.
func (c Challenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
