package repository

import (
	"errors"
	"fmt"
)

// ErrFavoriteNotFound is returned when removing a favorite that does not exist.
var ErrFavoriteNotFound = errors.New("favorite not found")

// StatusError carries the non-OK status and message returned by the
// external places service. Callers decide how to degrade.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("places API returned status %s", e.Status)
	}
	return fmt.Sprintf("places API returned status %s: %s", e.Status, e.Message)
}
