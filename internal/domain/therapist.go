package domain

import "time"

// Therapist models a professional account. Therapists live in their own
// store, separate from end-users, and always carry the THERAPIST role.
type Therapist struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	Specialization string
	Qualification  string
	Experience     int
	Phone          string
	Bio            string
	Rating         float64
	Available      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
