package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Room inventory is browsable without authentication
	r.Get("/api/v1/rooms", roomHandler.GetRooms)
	r.Get("/api/v1/rooms/{id}", roomHandler.GetRoom)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireAdmin(log))

		// POST /api/v1/rooms - add a room type to inventory
		r.Post("/api/v1/rooms", roomHandler.CreateRoom)

		// PUT /api/v1/rooms/{id} - update a room type
		r.Put("/api/v1/rooms/{id}", roomHandler.UpdateRoom)

		// DELETE /api/v1/rooms/{id} - remove a room type
		r.Delete("/api/v1/rooms/{id}", roomHandler.DeleteRoom)
	})
}
