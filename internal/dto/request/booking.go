package request

type CreateBookingRequest struct {
	RoomID              int64  `json:"room_id" validate:"required,gt=0"`
	ArrivalDate         string `json:"arrival_date" validate:"required,datetime=2006-01-02"`
	NoOfAdults          int    `json:"no_of_adults" validate:"required,gt=0"`
	NoOfChildren        int    `json:"no_of_children" validate:"gte=0"`
	NoOfWeekNights      int    `json:"no_of_week_nights" validate:"gte=0"`
	NoOfWeekendNights   int    `json:"no_of_weekend_nights" validate:"gte=0"`
	TypeOfMealPlan      int    `json:"type_of_meal_plan" validate:"gte=0,lte=2"`
	NoOfSpecialRequests int    `json:"no_of_special_requests" validate:"gte=0"`
}

type ListBookingsRequest struct {
	Status  string
	Page    int
	PerPage int
}
