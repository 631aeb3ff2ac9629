package model

import "time"

const (
	StatusPending   = "pending"
	StatusAttending = "attending"
	StatusDeclined  = "declined"
)

// Response records the RSVP of one contact under one token. The composite
// unique index makes resubmission an update, never a second row.
type Response struct {
	ID          uint   `gorm:"primarykey"`
	TokenID     uint   `gorm:"uniqueIndex:idx_token_contact; not null"`
	ContactUUID string `gorm:"uniqueIndex:idx_token_contact; not null"`
	Status      string `gorm:"not null; default:pending"`
	VerifiedAt  time.Time
	RespondedAt time.Time
}

// ValidStatus reports whether s is an accepted final RSVP status. Pending is
// not settable from outside; rows start there and never go back.
func ValidStatus(s string) bool {
	return s == StatusAttending || s == StatusDeclined
}
