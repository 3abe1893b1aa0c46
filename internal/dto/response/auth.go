package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type UserResponse struct {
	UserID    string          `json:"user_id"`
	Role      entity.UserRole `json:"role"`
	Email     string          `json:"email"`
	FullName  *string         `json:"full_name,omitempty"`
	Phone     *string         `json:"phone,omitempty"`
	City      *string         `json:"city,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// HotelRegisterResponse echoes the generated admin credentials so the hotel
// can log in afterwards.
type HotelRegisterResponse struct {
	HotelName     string `json:"hotel_name"`
	AdminUserID   string `json:"admin_user_id"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	City          string `json:"city"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Role:      user.Role,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		City:      user.City,
		CreatedAt: user.CreatedAt,
	}
}
