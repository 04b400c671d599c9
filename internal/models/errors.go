package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrDuplicate indicates a unique constraint rejected the write
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrCheckViolation indicates a database check constraint rejected the write
	ErrCheckViolation = errors.New("check constraint violated")

	// ErrInvalidTransition indicates a status change the state machine forbids
	ErrInvalidTransition = errors.New("invalid status transition")
)
