package dto

import (
	"time"

	"github.com/mindconnect/mind-service/internal/domain"
)

// TherapistResponse is the public view of a therapist.
type TherapistResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Specialization string    `json:"specialization"`
	Qualification  string    `json:"qualification"`
	Experience     int       `json:"experience"`
	Phone          string    `json:"phone,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Rating         float64   `json:"rating"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateTherapistRequest payload for profile updates.
type UpdateTherapistRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Specialization string `json:"specialization"`
	Qualification  string `json:"qualification"`
	Experience     int    `json:"experience"`
	Phone          string `json:"phone"`
	Bio            string `json:"bio"`
	Available      bool   `json:"available"`
	Password       string `json:"password"`
}

// UpdateAvailabilityRequest payload for availability toggles.
type UpdateAvailabilityRequest struct {
	Available bool `json:"available"`
}

// NewTherapistResponse maps a domain therapist, redacting credentials.
func NewTherapistResponse(therapist *domain.Therapist) TherapistResponse {
	return TherapistResponse{
		ID:             therapist.ID,
		FirstName:      therapist.FirstName,
		LastName:       therapist.LastName,
		Email:          therapist.Email,
		Specialization: therapist.Specialization,
		Qualification:  therapist.Qualification,
		Experience:     therapist.Experience,
		Phone:          therapist.Phone,
		Bio:            therapist.Bio,
		Rating:         therapist.Rating,
		Available:      therapist.Available,
		CreatedAt:      therapist.CreatedAt,
	}
}

// NewTherapistResponses maps a slice of domain therapists.
func NewTherapistResponses(therapists []*domain.Therapist) []TherapistResponse {
	out := make([]TherapistResponse, 0, len(therapists))
	for _, therapist := range therapists {
		out = append(out, NewTherapistResponse(therapist))
	}
	return out
}
