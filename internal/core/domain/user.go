package domain

import "time"

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// User models a registered actor. Users are created at registration (or on
// first admin-passcode login) and never deleted.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	EmployeeCode string    `json:"employee_code"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the session-carried view of a User: derived at login, encoded
// into the session cookie, and re-decoded on every request. The store is not
// consulted again after login.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Identity returns the session record derived from u.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
