package domain

import "errors"

var (
	ErrCarNotFound         = errors.New("car not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrCarNotAvailable        = errors.New("car is not available in the requested interval")
	ErrOverlappingMaintenance = errors.New("maintenance window overlaps an existing one")
	ErrReservationNotActive   = errors.New("only active reservations can be modified")
	ErrConcurrencyConflict    = errors.New("concurrent booking conflict")
)

var (
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInvalidInterval        = errors.New("invalid interval")
)

var (
	ErrValidation = errors.New("validation error")
)
