package request

// Room codes follow the room_type_<N> pattern; the code, not the display
// label, is what reaches the prediction feature space.
type CreateRoomRequest struct {
	RoomType       string  `json:"room_type" validate:"required,min=1,max=100"`
	RoomCode       string  `json:"room_code" validate:"required,startswith=room_type_"`
	TotalRooms     int     `json:"total_rooms" validate:"required,gt=0"`
	AvailableRooms int     `json:"available_rooms" validate:"gte=0"`
	Price          float64 `json:"price" validate:"required,gt=0"`
}

type ListRoomsRequest struct {
	RoomType      string
	AvailableOnly bool
	Page          int
	PerPage       int
}
