package user

import (
	"time"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
)

// User is a back-office account. Passwords are stored as bcrypt hashes and
// never leave the service layer.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         access.Role `json:"role"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	LastLogin    *time.Time  `json:"lastLogin"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
