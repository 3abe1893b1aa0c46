package response

import "hotel-booking/internal/data/entity"

type RoomResponse struct {
	RoomID         int64   `json:"room_id"`
	RoomType       string  `json:"room_type"`
	RoomCode       string  `json:"room_code"`
	TotalRooms     int     `json:"total_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	Price          float64 `json:"price"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		RoomID:         room.RoomID,
		RoomType:       room.RoomType,
		RoomCode:       room.RoomCode,
		TotalRooms:     room.TotalRooms,
		AvailableRooms: room.AvailableRooms,
		Price:          room.Price,
	}
}
