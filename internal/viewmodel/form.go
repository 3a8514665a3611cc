package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/session"
	"github.com/studiozen/yogabook/internal/validator"
)

// FormMode selects between the create and update variants of the
// session form.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeUpdate
)

// FormViewModel drives the session create/update screen. The form is
// admin-only; Init redirects everyone else back to the session list.
type FormViewModel struct {
	sessions SessionAPI
	teachers TeacherAPI
	store    *session.Store
	nav      Navigator
	notifier Notifier

	mode      FormMode
	sessionID int64

	mu       sync.Mutex
	teacherL []model.Teacher
	form     model.SessionRequest
}

// NewCreateForm creates the view-model in create mode.
func NewCreateForm(sessions SessionAPI, teachers TeacherAPI, store *session.Store, nav Navigator, notifier Notifier) *FormViewModel {
	return &FormViewModel{
		sessions: sessions,
		teachers: teachers,
		store:    store,
		nav:      nav,
		notifier: notifier,
		mode:     ModeCreate,
	}
}

// NewUpdateForm creates the view-model in update mode for sessionID.
func NewUpdateForm(sessions SessionAPI, teachers TeacherAPI, store *session.Store, nav Navigator, notifier Notifier, sessionID int64) *FormViewModel {
	return &FormViewModel{
		sessions:  sessions,
		teachers:  teachers,
		store:     store,
		nav:       nav,
		notifier:  notifier,
		mode:      ModeUpdate,
		sessionID: sessionID,
	}
}

// Init loads the teacher list for the dropdown and, in update mode,
// pre-fills the form from the existing session. Non-admin users are
// redirected to /sessions and get ErrAdminOnly.
func (vm *FormViewModel) Init(ctx context.Context) error {
	info, ok := vm.store.Information()
	if !ok {
		return ErrNotLoggedIn
	}
	if !info.Admin {
		vm.nav.Navigate("/sessions")
		return ErrAdminOnly
	}

	teachers, err := vm.teachers.All(ctx)
	if err != nil {
		return fmt.Errorf("fetch teachers: %w", err)
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.teacherL = teachers

	if vm.mode == ModeUpdate {
		sess, err := vm.sessions.Detail(ctx, vm.sessionID)
		if err != nil {
			return fmt.Errorf("fetch session %d: %w", vm.sessionID, err)
		}
		vm.form = model.SessionRequest{
			Name:        sess.Name,
			Date:        sess.Date,
			TeacherID:   sess.TeacherID,
			Description: sess.Description,
		}
	}
	return nil
}

// Teachers returns the dropdown choices loaded by Init.
func (vm *FormViewModel) Teachers() []model.Teacher {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.teacherL
}

// Form returns the current form values (the pre-filled session in
// update mode, zero values in create mode).
func (vm *FormViewModel) Form() model.SessionRequest {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.form
}

// Validate checks the form against its constraints. Returns nil when
// valid or a field → message map otherwise.
func (vm *FormViewModel) Validate(form *model.SessionRequest) map[string]string {
	return validator.Struct(form)
}

// Submit validates and sends the form (POST in create mode, PUT in
// update mode) with exactly the four form fields as the body, then
// notifies and navigates back to the session list.
func (vm *FormViewModel) Submit(ctx context.Context, form *model.SessionRequest) error {
	if fields := vm.Validate(form); fields != nil {
		return &ValidationError{Fields: fields}
	}

	switch vm.mode {
	case ModeCreate:
		if _, err := vm.sessions.Create(ctx, form); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		vm.notifier.Notify("Session created !")
	case ModeUpdate:
		if _, err := vm.sessions.Update(ctx, vm.sessionID, form); err != nil {
			return fmt.Errorf("update session %d: %w", vm.sessionID, err)
		}
		vm.notifier.Notify("Session updated !")
	}

	vm.nav.Navigate("/sessions")
	return nil
}

// ValidationError carries per-field validation messages out of Submit.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
