package domain

import "time"

// Role access level of a back-office user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// ValidRoles lists every assignable role
var ValidRoles = []Role{RoleAdmin, RoleStaff}

// User a back-office identity (admin or staff member)
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Email        string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user has administrative rights
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
