package user

import "time"

// Profile is the public view of a GameON user. Sports maps sport name to
// self-declared proficiency level, e.g. {"tennis": "Basic"}.
type Profile struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone_number"`
	Sports    map[string]string `json:"sports"`
	CreatedAt time.Time         `json:"created_at,omitempty"`
}

// AuthUser is a profile plus the bearer token issued at login/register.
type AuthUser struct {
	Profile
	Token string `json:"token,omitempty"`
}

// Credentials is a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginStatus is the backend's answer to "is this token still good".
type LoginStatus struct {
	IsLoggedIn bool   `json:"is_login"`
	UserID     *int64 `json:"user_id"`
}

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID int64
	Name   string
}
