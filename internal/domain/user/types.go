package user

type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

func NewRole(value string) (Role, error) {
	r := Role(value)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageReservations reports whether the role may perform staff-side
// workflow transitions (approve, reject, issue, return, scan).
func (r Role) CanManageReservations() bool {
	return r == RoleStaff || r == RoleAdmin
}
