// Package common defines sentinel errors shared by the repositories, services
// and the CLI. Callers match them with errors.Is; details are attached by
// wrapping, e.g. fmt.Errorf("%w: Username is less than 4 characters", ErrValidation).
package common

import (
	"errors"
	"strings"
)

var (
	// Input errors: blank, malformed or too long fields.
	ErrValidation = errors.New("validation error")

	// Registration of a username that already exists.
	ErrConflict = errors.New("already exists")

	// Missing account, or missing/foreign/hidden post.
	ErrNotFound = errors.New("not found")

	// Wrong password.
	ErrUnauthorized = errors.New("unauthorized")

	// Mutating action attempted without an active session.
	ErrAuthRequired = errors.New("authentication required")

	// Pending edit token absent, malformed or stale.
	ErrInvalidHandoff = errors.New("invalid pending edit")
)

var sentinels = []error{
	ErrValidation, ErrConflict, ErrNotFound,
	ErrUnauthorized, ErrAuthRequired, ErrInvalidHandoff,
}

// Message returns the part of err meant for the user. For errors built as
// fmt.Errorf("%w: text", sentinel) that is "text"; anything else is
// returned whole.
func Message(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	for _, sentinel := range sentinels {
		if !errors.Is(err, sentinel) {
			continue
		}
		if rest, ok := strings.CutPrefix(s, sentinel.Error()+": "); ok {
			return rest
		}
	}
	return s
}
