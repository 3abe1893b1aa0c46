package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	BookingID int64  `json:"booking_id"`
	UserID    string `json:"user_id"`
	RoomID    int64  `json:"room_id"`

	LeadTime                  int     `json:"lead_time"`
	MarketSegmentType         string  `json:"market_segment_type"`
	ArrivalMonth              int     `json:"arrival_month"`
	NoOfPreviousCancellations int     `json:"no_of_previous_cancellations"`
	RoomTypeReserved          string  `json:"room_type_reserved"`
	RepeatedGuest             int     `json:"repeated_guest"`
	AvgPricePerRoom           float64 `json:"avg_price_per_room"`

	NoOfAdults          int    `json:"no_of_adults"`
	NoOfChildren        int    `json:"no_of_children"`
	ArrivalDate         string `json:"arrival_date"`
	NoOfWeekNights      int    `json:"no_of_week_nights"`
	NoOfWeekendNights   int    `json:"no_of_weekend_nights"`
	TypeOfMealPlan      int    `json:"type_of_meal_plan"`
	NoOfSpecialRequests int    `json:"no_of_special_requests"`

	BookingTime            time.Time            `json:"booking_time"`
	CancellationPrediction *float64             `json:"cancellation_prediction,omitempty"`
	Status                 entity.BookingStatus `json:"status"`
}

type PredictionResponse struct {
	BookingID              int64     `json:"booking_id"`
	CancellationPrediction float64   `json:"cancellation_prediction"`
	ConfidenceScore        float64   `json:"confidence_score"`
	PredictionTimestamp    time.Time `json:"prediction_timestamp"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		BookingID:                 booking.BookingID,
		UserID:                    booking.UserID,
		RoomID:                    booking.RoomID,
		LeadTime:                  booking.LeadTime,
		MarketSegmentType:         booking.MarketSegmentType,
		ArrivalMonth:              booking.ArrivalMonth,
		NoOfPreviousCancellations: booking.NoOfPreviousCancellations,
		RoomTypeReserved:          booking.RoomTypeReserved,
		RepeatedGuest:             booking.RepeatedGuest,
		AvgPricePerRoom:           booking.AvgPricePerRoom,
		NoOfAdults:                booking.NoOfAdults,
		NoOfChildren:              booking.NoOfChildren,
		ArrivalDate:               booking.ArrivalDate.Format("2006-01-02"),
		NoOfWeekNights:            booking.NoOfWeekNights,
		NoOfWeekendNights:         booking.NoOfWeekendNights,
		TypeOfMealPlan:            booking.TypeOfMealPlan,
		NoOfSpecialRequests:       booking.NoOfSpecialRequests,
		BookingTime:               booking.BookingTime,
		CancellationPrediction:    booking.CancellationPrediction,
		Status:                    booking.Status,
	}
}
