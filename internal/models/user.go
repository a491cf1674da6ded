package model

import "time"

// User is an account record. Email and phone are nullable so their unique
// indexes stay sparse: many users may carry neither, but a value present is
// globally unique. The unique indexes, not the service-level pre-checks, are
// the authoritative guard against duplicate identities.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Email     *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	Phone     *string   `gorm:"uniqueIndex" json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
