package model

import "time"

// GuestList is the subject a token grants access to. The core treats it as a
// read-only projection source.
type GuestList struct {
	ID        uint   `gorm:"primarykey"`
	UUID      string `gorm:"uniqueIndex; not null"`
	Title     string
	Host      string
	Venue     string
	EventDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	Guests    []Guest `gorm:"constraint:OnDelete:CASCADE"`
}

type Guest struct {
	ID          uint   `gorm:"primarykey"`
	GuestListID uint   `gorm:"index; not null"`
	ContactUUID string `gorm:"index; not null"`
	Name        string
	Email       string
}
