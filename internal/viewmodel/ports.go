// Package viewmodel contains the non-presentational logic behind each
// screen: derived fields, preconditions, and the actions a presenter may
// trigger. View-models take their collaborators by interface so tests
// and alternative front ends can substitute them.
package viewmodel

import (
	"context"
	"errors"

	"github.com/studiozen/yogabook/internal/model"
)

// SessionAPI is the session resource contract consumed by view-models.
// Implemented by apiclient.SessionClient.
type SessionAPI interface {
	All(ctx context.Context) ([]model.Session, error)
	Detail(ctx context.Context, id int64) (*model.Session, error)
	Create(ctx context.Context, req *model.SessionRequest) (*model.Session, error)
	Update(ctx context.Context, id int64, req *model.SessionRequest) (*model.Session, error)
	Delete(ctx context.Context, id int64) error
	Participate(ctx context.Context, sessionID, userID int64) error
	UnParticipate(ctx context.Context, sessionID, userID int64) error
}

// TeacherAPI is the teacher resource contract consumed by view-models.
type TeacherAPI interface {
	All(ctx context.Context) ([]model.Teacher, error)
	Detail(ctx context.Context, id int64) (*model.Teacher, error)
}

// UserAPI is the user resource contract consumed by view-models.
type UserAPI interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

// AuthAPI is the authentication contract consumed by view-models.
type AuthAPI interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.SessionInformation, error)
	Register(ctx context.Context, req *model.RegisterRequest) error
}

// Navigator abstracts route changes away from the view-models.
type Navigator interface {
	Navigate(path string)
	Back()
}

// Notifier receives the short user-facing messages a view-model emits
// after an action ("Session created !", ...).
type Notifier interface {
	Notify(message string)
}

// Precondition errors shared across view-models.
var (
	ErrNotLoggedIn          = errors.New("no authenticated user")
	ErrNotLoaded            = errors.New("view not loaded")
	ErrAdminOnly            = errors.New("action restricted to admins")
	ErrNonAdminOnly         = errors.New("action restricted to non-admin members")
	ErrAlreadyParticipating = errors.New("already participating in this session")
	ErrNotParticipating     = errors.New("not participating in this session")
)
