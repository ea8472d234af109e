// Package errs defines the error taxonomy shared by the navigation core.
//
// Both errors signal programmer mistakes: callers wrap them with context
// and the host loop lets them terminate the game.
package errs

import "errors"

var (
	// ErrInvalidArgument is returned for nil screens, nil input snapshots
	// and similar contract violations.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when a tower, cannon or player index
	// is outside the owning collection.
	ErrIndexOutOfRange = errors.New("index out of range")
)
