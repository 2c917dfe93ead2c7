package models

// AdminUser is a back-office account as listed by admin/users.
type AdminUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	LastLogin string `json:"last_login,omitempty"`
}

// UserRequest creates a new admin account. The password travels to the
// backend only; this frontend never stores or hashes it.
type UserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role"`
}

// AuthUser is the profile attached to a login or verify response.
type AuthUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// DisplayName prefers the first name and falls back to the username,
// matching how the back office greets the operator.
func (u AuthUser) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}
