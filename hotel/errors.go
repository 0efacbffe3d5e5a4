// Package hotel owns the room inventory and the reservation ledger.
//
// Failures are reported with the sentinel errors below so the console can
// tell them apart with errors.Is. None of them is fatal.
package hotel

import "errors"

var (
	// ErrRoomNotFound is returned when no room has the requested number.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomUnavailable is returned when the room is already reserved.
	ErrRoomUnavailable = errors.New("room not available")

	// ErrDuplicateRoom is returned by AddRoom when the number is taken.
	ErrDuplicateRoom = errors.New("duplicate room number")

	// ErrInvalidPrice is returned by AddRoom for a negative price.
	ErrInvalidPrice = errors.New("room price must not be negative")

	// ErrInvalidNights is returned by MakeReservation when nights <= 0.
	ErrInvalidNights = errors.New("number of nights must be positive")

	// ErrReservationNotFound is returned when no reservation has the requested id.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrUnknownStore is returned by OpenStore for an unsupported store kind.
	ErrUnknownStore = errors.New("unknown store kind")
)
