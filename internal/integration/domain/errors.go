package domain

import "errors"

// Error taxonomy for the Google sync flows.
var (
	// ErrNotAuthenticated means no usable Google credential exists. Fatal to
	// the whole operation; no provider calls are made.
	ErrNotAuthenticated = errors.New("google account not connected or credential expired")

	// ErrProviderUnavailable is a transient remote failure, isolated to the
	// failing call.
	ErrProviderUnavailable = errors.New("google service unavailable")

	// ErrPersistence means a local write failed after a successful remote
	// create, leaving an orphaned remote record.
	ErrPersistence = errors.New("local persistence failed after remote create")

	// ErrRemoteNotFound means the remote resource is already gone. Delete
	// flows treat this as success.
	ErrRemoteNotFound = errors.New("remote resource not found")
)
