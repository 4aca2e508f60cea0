package store

import "errors"

// ErrNotFound is returned when a requested vlog does not exist.
var ErrNotFound = errors.New("not found")
