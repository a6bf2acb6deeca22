package giveaway

import "errors"

// Sentinel errors returned by engine operations. The command layer maps
// these to user-facing replies; storage failures are wrapped separately
// and always surface as a failed operation.
var (
	ErrNotFound        = errors.New("giveaway not found")
	ErrAlreadyEnded    = errors.New("giveaway already ended")
	ErrAlreadyJoined   = errors.New("user already joined this giveaway")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrPastTimestamp   = errors.New("end time must be in the future")
	ErrDuplicateID     = errors.New("id already exists")
	ErrInvalidInput    = errors.New("invalid input")
)
