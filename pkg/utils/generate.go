package utils

import (
	"strings"

	"github.com/google/uuid"

	"hotel-booking/internal/data/entity"
)

// GenerateUserID builds a role-prefixed user ID: "C" for clients, "A" for
// admins, followed by an 8 character random suffix.
func GenerateUserID(role entity.UserRole) string {
	prefix := "C"
	if role == entity.RoleAdmin {
		prefix = "A"
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + suffix
}
