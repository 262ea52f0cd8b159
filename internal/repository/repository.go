package repository

import (
	"errors"
)

// ErrNotFound is returned when a record does not exist or is owned by a
// different user. The two cases are deliberately indistinguishable so a
// lookup cannot leak whether another user's record exists.
var ErrNotFound = errors.New("record not found")
