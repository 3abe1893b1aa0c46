package entity

import "time"

type HistoryEventKind string

const (
	HistoryEventSignup          HistoryEventKind = "signup"
	HistoryEventBookingCreated  HistoryEventKind = "booking_created"
	HistoryEventBookingCanceled HistoryEventKind = "booking_canceled"
)

// History is the append-only activity ledger. Rows are never updated or
// deleted. BookingID is nil for signup events; the event kind is the
// authoritative discriminator, not the nullability of the reference.
type History struct {
	HistoryID int64            `db:"history_id"`
	UserID    string           `db:"user_id"`
	BookingID *int64           `db:"booking_id"`
	EventKind HistoryEventKind `db:"event_kind"`
	CreatedAt time.Time        `db:"created_at"`
}
