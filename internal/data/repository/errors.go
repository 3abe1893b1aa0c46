package repository

import "errors"

// Domain conflicts surfaced by the conditional writes. Services translate
// these into the HTTP error taxonomy.
var (
	// ErrRoomSoldOut: the conditional availability decrement matched zero
	// rows because available_rooms was already 0.
	ErrRoomSoldOut = errors.New("room sold out")

	// ErrBookingAlreadyCanceled: the conditional status update matched zero
	// rows because the booking had left the confirmed state.
	ErrBookingAlreadyCanceled = errors.New("booking already canceled")
)
