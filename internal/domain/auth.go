package domain

// AccountKind differentiates the two disjoint identity stores.
type AccountKind string

const (
	AccountKindUser      AccountKind = "USER"
	AccountKindTherapist AccountKind = "THERAPIST"
)

// ParseAccountKind maps a client-supplied account type hint ("user" or
// "therapist", any case) onto an AccountKind. Anything unrecognized is
// treated as an end-user, matching the login form's default.
func ParseAccountKind(hint string) AccountKind {
	switch hint {
	case "therapist", "THERAPIST", "Therapist":
		return AccountKindTherapist
	default:
		return AccountKindUser
	}
}
