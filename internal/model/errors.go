package model

import "errors"

var (
	// ErrNotFound is the absence result: the looked-up record does not
	// exist. Callers treat it as a valid outcome, not a failure.
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a duplicate unique field (slug, username, pageKey).
	ErrConflict = errors.New("conflict")
)
