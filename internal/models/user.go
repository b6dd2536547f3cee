package models

// User is an identity record held by the user registry.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Avatar        string `json:"avatar"`
	IsCurrentUser bool   `json:"is_current_user"`
	IsAdmin       bool   `json:"is_admin,omitempty"`
	Status        string `json:"status,omitempty"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave
// the corresponding field untouched.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Status *string `json:"status,omitempty"`
}
