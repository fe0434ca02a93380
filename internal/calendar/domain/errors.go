package domain

import "errors"

// ErrEventNotFound means the local event does not exist or is not owned by
// the caller.
var ErrEventNotFound = errors.New("event not found")
