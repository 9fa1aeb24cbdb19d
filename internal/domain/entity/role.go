// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of account and is carried as a claim in access tokens.
type Role string

const (
	// RoleDriver indicates a driver account.
	RoleDriver Role = "driver"
	// RolePassenger indicates a passenger account.
	RolePassenger Role = "passenger"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleDriver, RolePassenger, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a claim string back to a Role.
// Unknown strings yield the zero Role, which is not valid.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return ""
	}

	return role
}
