package entity

// Role is the authorization role carried by users and tokens.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
	RoleJobseeker Role = "jobseeker"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRecruiter, RoleJobseeker:
		return true
	}
	return false
}

// ParseRole maps free-form input to a known role, falling back to jobseeker.
func ParseRole(s string) Role {
	r := Role(s)
	if r.Valid() {
		return r
	}
	return RoleJobseeker
}
