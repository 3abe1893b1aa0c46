package request

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6,max=100"`
	Role     string  `json:"role" validate:"omitempty,oneof=client admin"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	City     *string `json:"city,omitempty" validate:"omitempty,max=100"`
}

// HotelRegisterRequest registers a hotel as an admin account carrying the
// hotel profile.
type HotelRegisterRequest struct {
	HotelName     string  `json:"hotel_name" validate:"required,min=1,max=200"`
	ContactPerson string  `json:"contact_person" validate:"required,min=1,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=6"`
	Phone         string  `json:"phone" validate:"required,min=10,max=15"`
	City          string  `json:"city" validate:"required,min=1,max=100"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Website       *string `json:"website,omitempty" validate:"omitempty,max=200"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginRequest authenticates an admin by user ID instead of email.
type AdminLoginRequest struct {
	UserID   string `json:"user_id" validate:"required,min=6,max=20"`
	Password string `json:"password" validate:"required,min=6"`
}
