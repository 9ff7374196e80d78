package dto

import (
	"time"

	"github.com/mindconnect/mind-service/internal/domain"
)

// UserResponse is the public view of a user. Credential fields never leave
// the service.
type UserResponse struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Age              *int      `json:"age,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	Role             string    `json:"role"`
	CreatedAt        time.Time `json:"created_at"`
}

// UpdateUserRequest payload for profile updates.
type UpdateUserRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	Age              *int   `json:"age"`
	EmergencyContact string `json:"emergencyContact"`
	Password         string `json:"password"`
}

// NewUserResponse maps a domain user, redacting credentials.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		Phone:            user.Phone,
		Age:              user.Age,
		EmergencyContact: user.EmergencyContact,
		Role:             user.RoleName,
		CreatedAt:        user.CreatedAt,
	}
}

// NewUserResponses maps a slice of domain users.
func NewUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
