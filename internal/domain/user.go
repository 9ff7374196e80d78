package domain

import "time"

// User is the domain model for end-users seeking support.
type User struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	PasswordHash     string
	Phone            string
	Age              *int
	EmergencyContact string
	RoleID           string
	RoleName         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
