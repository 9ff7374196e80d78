package dto

import "time"

// LoginRequest payload for login. UserType hints which of the two account
// stores to authenticate against: "user" (default) or "therapist".
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// RegisterUserRequest payload for new end-users. UserType optionally names
// the catalog role to assign.
type RegisterUserRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Phone            string `json:"phone"`
	Age              *int   `json:"age"`
	EmergencyContact string `json:"emergencyContact"`
	UserType         string `json:"userType"`
}

// RegisterTherapistRequest payload for new therapists.
type RegisterTherapistRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Specialization string `json:"specialization"`
	Qualification  string `json:"qualification"`
	Experience     int    `json:"experience"`
	Phone          string `json:"phone"`
	Bio            string `json:"bio"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserType  string    `json:"userType"`
}
