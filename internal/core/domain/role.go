package domain

// Role is the closed set of roles a session can carry.
type Role string

const (
	RoleSuperOrgAdmin Role = "SUPER_ORG_ADMIN"
	RoleAdmin         Role = "ADMIN"
	RoleSimulator     Role = "SIMULATOR"
	RoleEndUser       Role = "END_USER"
)

// RoleFromString maps a raw role name onto the recognized set. Anything
// outside the set falls back to the lowest-privilege role.
func RoleFromString(raw string) Role {
	switch Role(raw) {
	case RoleSuperOrgAdmin, RoleAdmin, RoleSimulator, RoleEndUser:
		return Role(raw)
	default:
		return RoleEndUser
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperOrgAdmin
}
