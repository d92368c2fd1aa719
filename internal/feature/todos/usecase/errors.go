// Package usecase implements the business logic for the todos feature.
package usecase

import "errors"

// ErrTodoNotFound is returned when a todo does not exist or belongs to a
// different user. The two cases are deliberately indistinguishable so a
// non-owner cannot probe which IDs exist.
var ErrTodoNotFound = errors.New("todo not found")
