package repository

import "errors"

// ErrNotFound is returned when a lookup key is not registered.
var ErrNotFound = errors.New("not found")
