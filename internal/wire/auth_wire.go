package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/v1/auth/register", authHandler.Register)
	r.Post("/api/v1/auth/hotel-register", authHandler.RegisterHotel)
	r.Post("/api/v1/auth/login", authHandler.Login)
	r.Post("/api/v1/auth/admin-login", authHandler.AdminLogin)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))

		// GET /api/v1/auth/me - current caller's profile
		r.Get("/api/v1/auth/me", authHandler.Me)

		// POST /api/v1/auth/logout - stateless logout
		r.Post("/api/v1/auth/logout", authHandler.Logout)
	})
}
