package model

import "time"

// User represents a studio member account as served by the API.
// Password is write-only: it is sent on register/update calls but the
// server never echoes it back.
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	LastName  string     `json:"lastName"`
	FirstName string     `json:"firstName"`
	Admin     bool       `json:"admin"`
	Password  string     `json:"password,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
