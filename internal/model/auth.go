package model

// LoginRequest is the payload for member authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255" validate:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=3,max=128" validate:"required,min=3,max=128"`
}

// RegisterRequest is the payload for creating a new member account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=255" validate:"required,email,max=255"`
	FirstName string `json:"firstName" binding:"required,min=3,max=20" validate:"required,min=3,max=20"`
	LastName  string `json:"lastName" binding:"required,min=3,max=20" validate:"required,min=3,max=20"`
	Password  string `json:"password" binding:"required,min=3,max=40" validate:"required,min=3,max=40"`
}

// SessionInformation is returned after a successful login and kept as
// the ambient identity for the rest of the process lifetime. Every
// view-model reads it to decide visibility and authorization of actions.
type SessionInformation struct {
	Token     string `json:"token,omitempty"`
	Type      string `json:"type,omitempty"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// MessageResponse is the body returned by endpoints that acknowledge an
// action without returning a resource (register, delete, participate).
type MessageResponse struct {
	Message string `json:"message"`
}
