package domain

// Role is carried in every session token. Authorization compares roles for
// exact equality; there is no hierarchy.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Roles lists every role the service knows about.
var Roles = []Role{RoleTeacher, RoleStudent, RoleAdmin}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleTeacher, RoleStudent, RoleAdmin:
		return true
	}
	return false
}

// SelfRegisterable reports whether a user may pick r when signing up.
// Admins only come from bootstrap.
func (r Role) SelfRegisterable() bool {
	return r == RoleTeacher || r == RoleStudent
}

func (r Role) String() string { return string(r) }

// Identity is the authenticated principal behind a request.
type Identity struct {
	SubjectID string
	Role      Role
}
