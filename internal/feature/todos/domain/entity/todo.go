// Package entity defines the domain entities for the todos feature.
package entity

import "time"

// Todo represents a single todo item owned by exactly one user.
// The owner reference is a plain foreign key; a todo never outlives its
// owner because users are not deletable.
type Todo struct {
	// ID is the unique identifier for the todo.
	ID uint `gorm:"primaryKey"`

	// Title is the todo's short text. Required on creation.
	Title string `gorm:"size:255;not null"`

	// Description is optional free-form detail.
	Description string `gorm:"size:1024"`

	// Completed reports whether the todo is done. Defaults to false.
	Completed bool `gorm:"not null;default:false"`

	// UserID references the owning user. Every ownership decision is made
	// against this stored value, never a caller-supplied one.
	UserID uint `gorm:"index;not null"`

	// CreatedAt is the timestamp when the todo was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the todo was last updated.
	UpdatedAt time.Time
}
