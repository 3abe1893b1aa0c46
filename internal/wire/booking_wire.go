package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== CLIENT ROUTES ====================
	// Creating and canceling bookings are guest operations
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireClient(log))

		// POST /api/v1/bookings - create a booking
		r.Post("/api/v1/bookings", bookingHandler.CreateBooking)

		// POST /api/v1/bookings/{id}/cancel - cancel own booking
		r.Post("/api/v1/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))

		// GET /api/v1/bookings - caller's booking history
		r.Get("/api/v1/bookings", bookingHandler.GetBookings)

		// GET /api/v1/bookings/{id} - booking details (owner or admin)
		r.Get("/api/v1/bookings/{id}", bookingHandler.GetBooking)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireAdmin(log))

		// POST /api/v1/bookings/{id}/predict - cancellation risk score
		r.Post("/api/v1/bookings/{id}/predict", bookingHandler.PredictCancellation)
	})
}
