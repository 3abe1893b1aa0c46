package entity

// Room inventory row. AvailableRooms is mutated only by booking creation
// (decrement) and cancellation (increment), always inside a transaction,
// and always satisfies 0 <= available_rooms <= total_rooms.
//
// RoomCode is the normalized identifier (room_type_<N>) exposed to the
// prediction feature space; RoomType is the free-text display label.
type Room struct {
	RoomID         int64   `db:"room_id"`
	RoomType       string  `db:"room_type"`
	RoomCode       string  `db:"room_code"`
	TotalRooms     int     `db:"total_rooms"`
	AvailableRooms int     `db:"available_rooms"`
	Price          float64 `db:"price"`
}
