package entity

import "time"

type BookingStatus string

// Booking status is a closed two-state machine: confirmed -> canceled,
// with canceled terminal.
const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

type Booking struct {
	BookingID int64  `db:"booking_id"`
	UserID    string `db:"user_id"`
	RoomID    int64  `db:"room_id"`

	// Derived fields, computed once at creation time
	LeadTime                  int     `db:"lead_time"`
	MarketSegmentType         string  `db:"market_segment_type"`
	ArrivalMonth              int     `db:"arrival_month"`
	NoOfPreviousCancellations int     `db:"no_of_previous_cancellations"`
	RoomTypeReserved          string  `db:"room_type_reserved"`
	RepeatedGuest             int     `db:"repeated_guest"`
	AvgPricePerRoom           float64 `db:"avg_price_per_room"`

	// User-supplied fields
	NoOfAdults          int       `db:"no_of_adults"`
	NoOfChildren        int       `db:"no_of_children"`
	ArrivalDate         time.Time `db:"arrival_date"`
	NoOfWeekNights      int       `db:"no_of_week_nights"`
	NoOfWeekendNights   int       `db:"no_of_weekend_nights"`
	TypeOfMealPlan      int       `db:"type_of_meal_plan"`
	NoOfSpecialRequests int       `db:"no_of_special_requests"`

	BookingTime            time.Time     `db:"booking_time"`
	CancellationPrediction *float64      `db:"cancellation_prediction"`
	Status                 BookingStatus `db:"status"`
}
