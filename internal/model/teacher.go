package model

import "time"

// Teacher represents a yoga teacher as served by the API.
type Teacher struct {
	ID        int64      `json:"id"`
	LastName  string     `json:"lastName"`
	FirstName string     `json:"firstName"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
