package models

import "time"

// User is a directory entry. RoleID is a weak reference: the role may have
// been deleted, in which case the user resolves to no permissions.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	RoleID     string     `json:"role_id"`
	Department string     `json:"department"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}
