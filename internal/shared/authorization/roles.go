package authorization

// UserRole is the access level assigned to an account.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleWrite UserRole = "write"
	RoleRead  UserRole = "read"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// CanWrite reports whether the role may create or mutate records.
func (r UserRole) CanWrite() bool {
	return r == RoleAdmin || r == RoleWrite
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleWrite || r == RoleRead
}

// ParseUserRole returns the role for s, falling back to read-only
// for unknown values.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleRead
}
