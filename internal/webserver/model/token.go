package model

import "time"

const (
	KindShare = "share"
	KindRSVP  = "rsvp"
)

// Token is an opaque bearer credential granting read access to a guest list.
// Only a keyed hash of the secret is stored; the plaintext secret is returned
// once, at creation time, embedded in the share URL.
type Token struct {
	ID          uint   `gorm:"primarykey"`
	UUID        string `gorm:"uniqueIndex; not null"`
	SecretHash  string `gorm:"uniqueIndex; not null"`
	Kind        string `gorm:"not null"`
	SubjectUUID string `gorm:"index; not null"`
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Revoked     bool
	// Parent linkage is set at creation and never mutated, which is what
	// keeps the forwarding structure a forest.
	ParentID       *uint `gorm:"index"`
	Depth          int
	ContactUUID    string
	ForwarderName  string
	RecipientName  string
	RecipientEmail string
}

// Active reports whether the token can still be used at the given instant.
func (t Token) Active(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}

// Expired reports whether the token's validity window has passed.
func (t Token) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
