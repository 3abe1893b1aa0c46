package entity

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// User IDs are role-prefixed strings: "C" for clients, "A" for admins,
// followed by an 8 character random suffix. The ID is immutable.
type User struct {
	UserID       string   `db:"user_id"`
	Role         UserRole `db:"role"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	FullName     *string  `db:"full_name"`
	Phone        *string  `db:"phone"`
	City         *string  `db:"city"`

	// Hotel profile, filled only for admin users registered via hotel-register
	HotelName          *string `db:"hotel_name"`
	HotelAddress       *string `db:"hotel_address"`
	HotelWebsite       *string `db:"hotel_website"`
	HotelDescription   *string `db:"hotel_description"`
	HotelContactPerson *string `db:"hotel_contact_person"`

	CreatedAt time.Time `db:"created_at"`
}
