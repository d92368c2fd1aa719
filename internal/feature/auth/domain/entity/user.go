// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// Users are created on signup and never deleted; a todo's owner reference
// therefore always resolves to an existing row.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's identity, stored lowercased.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// The plaintext is never persisted.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
