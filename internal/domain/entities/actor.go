package entities

// UserRole is the role claim carried by an authenticated actor.
type UserRole string

const (
	RoleResearcher  UserRole = "researcher"
	RoleGrantOffice UserRole = "grant_office"
	RoleAdmin       UserRole = "admin"
)

func IsValidUserRole(r UserRole) bool {
	switch r {
	case RoleResearcher, RoleGrantOffice, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated identity invoking an operation. Identity
// verification happens upstream; the service trusts the id/role claims handed
// to it by the transport layer.
type Actor struct {
	ID   string   `json:"id"`
	Name string   `json:"name,omitempty"`
	Role UserRole `json:"role"`
}

// IsStaff reports whether the actor belongs to the grant office.
func (a Actor) IsStaff() bool {
	return a.Role == RoleGrantOffice || a.Role == RoleAdmin
}
