package services

import "errors"

// Sentinel error kinds. Services wrap these with fmt.Errorf("...: %w")
// so handlers can map them to status codes with errors.Is. Store
// failures are passed through as-is, without retry or suppression.
var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrActiveSprintExists = errors.New("another sprint is already active")
	ErrInvalidTransition  = errors.New("invalid sprint status transition")
	ErrInconsistentState  = errors.New("inconsistent sprint state")
)
