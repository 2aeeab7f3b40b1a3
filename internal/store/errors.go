package store

import "errors"

// ErrValidation indicates a mutation was rejected before any state changed.
var ErrValidation = errors.New("validation failed")

// ErrNotFound indicates an update targeted an id that does not exist.
var ErrNotFound = errors.New("record not found")
