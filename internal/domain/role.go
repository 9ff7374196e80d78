package domain

// Role is a named permission label assigned to end-users.
type Role struct {
	ID          string
	Name        string
	Description string
}

// DefaultRoleName is assigned when registration carries no usable type hint.
// The role catalog must contain it; startup fails otherwise.
const DefaultRoleName = "USER"

const (
	RoleAdmin     = "ADMIN"
	RoleUser      = "USER"
	RoleTherapist = "THERAPIST"
)
