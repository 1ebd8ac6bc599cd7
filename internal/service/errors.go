package service

import "errors"

var (
	// ErrNotFound covers missing local records: a favorite that was never
	// added, a review target that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers rejected input: bad rating range, empty
	// comment, missing place_id. Nothing is persisted.
	ErrValidation = errors.New("validation failed")

	// ErrRemoteLookup is returned when the external places service cannot
	// provide details and no local record exists to fall back on.
	ErrRemoteLookup = errors.New("details not found")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)
