package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

// Business-rule precondition failures of the reservation core.
// Deterministic outcomes, reported verbatim and never retried.
var (
	ErrSoldOut             = errors.New("no tickets remaining for this event")
	ErrAlreadyReserved     = errors.New("user already holds a confirmed reservation for this event")
	ErrNoActiveReservation = errors.New("no confirmed reservation to cancel")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrStorageUnavailable marks failures of the atomic effect step: lock
// acquisition timed out, the connection dropped, or the transaction rolled
// back. Nothing was applied, so the identical call is safe to retry.
var ErrStorageUnavailable = errors.New("storage temporarily unavailable")

// ErrInvariantViolation means the inventory accounting itself is broken
// (remaining would leave the [0, total] range outside the guarded path).
// It is an internal bug class, never a normal user-facing outcome.
var ErrInvariantViolation = errors.New("ticket inventory invariant violated")
