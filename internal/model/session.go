package model

import "time"

// Session represents a bookable yoga class as served by the API.
// Users holds the ids of participating members; the server guarantees
// the set is duplicate-free.
type Session struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Date        string     `json:"date"`
	TeacherID   int64      `json:"teacher_id"`
	Description string     `json:"description"`
	Users       []int64    `json:"users"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// HasParticipant reports whether userID is a member of the session's
// participant set.
func (s *Session) HasParticipant(userID int64) bool {
	for _, id := range s.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// SessionRequest is the payload for creating or updating a session.
// Server-assigned fields (id, users, timestamps) are never part of the
// request body.
type SessionRequest struct {
	Name        string `json:"name" binding:"required,max=255" validate:"required,max=255"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02" validate:"required,datetime=2006-01-02"`
	TeacherID   int64  `json:"teacher_id" binding:"required" validate:"required"`
	Description string `json:"description" binding:"required,max=2000" validate:"required,max=2000"`
}
