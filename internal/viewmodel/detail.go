package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/session"
)

// State is the lifecycle phase of a view-model instance.
type State int

const (
	// StateLoading is the initial phase, before the first successful fetch.
	StateLoading State = iota
	// StateReady means a snapshot is loaded and actions are accepted.
	StateReady
	// StatePending means a mutation and its follow-up re-fetch are in
	// flight. Derived fields still show the pre-action snapshot.
	StatePending
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePending:
		return "pending"
	default:
		return "unknown"
	}
}

// DetailViewModel drives the session detail screen: it loads one session
// plus its teacher, derives the admin/participation flags from the
// ambient identity, and exposes the participate / un-participate /
// delete actions.
//
// Mutating actions follow a strict mutate-then-re-fetch sequence with no
// optimistic update: derived fields only change once the re-fetch has
// completed. The mutex guarantees a single in-flight request chain per
// instance.
type DetailViewModel struct {
	sessions SessionAPI
	teachers TeacherAPI
	store    *session.Store
	nav      Navigator
	notifier Notifier

	sessionID int64

	// OnStateChange, when set, observes every state transition. Set it
	// before calling Load; it runs on the calling goroutine.
	OnStateChange func(State)

	mu            sync.Mutex
	state         State
	session       *model.Session
	teacher       *model.Teacher
	isAdmin       bool
	isParticipate bool
}

// NewDetailViewModel creates the view-model for one session id.
func NewDetailViewModel(sessions SessionAPI, teachers TeacherAPI, store *session.Store, nav Navigator, notifier Notifier, sessionID int64) *DetailViewModel {
	return &DetailViewModel{
		sessions:  sessions,
		teachers:  teachers,
		store:     store,
		nav:       nav,
		notifier:  notifier,
		sessionID: sessionID,
		state:     StateLoading,
	}
}

// Load fetches the session and its teacher and computes the derived
// flags. Call on view entry; the view always re-fetches, nothing is
// cached across instances.
func (vm *DetailViewModel) Load(ctx context.Context) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if _, ok := vm.store.Information(); !ok {
		return ErrNotLoggedIn
	}
	if err := vm.fetchLocked(ctx); err != nil {
		return err
	}
	vm.setStateLocked(StateReady)
	return nil
}

// fetchLocked re-fetches the session, then its teacher, and recomputes
// the derived flags. Any error leaves the previous snapshot untouched.
func (vm *DetailViewModel) fetchLocked(ctx context.Context) error {
	sess, err := vm.sessions.Detail(ctx, vm.sessionID)
	if err != nil {
		return fmt.Errorf("fetch session %d: %w", vm.sessionID, err)
	}
	teacher, err := vm.teachers.Detail(ctx, sess.TeacherID)
	if err != nil {
		return fmt.Errorf("fetch teacher %d: %w", sess.TeacherID, err)
	}

	info, ok := vm.store.Information()
	if !ok {
		return ErrNotLoggedIn
	}

	vm.session = sess
	vm.teacher = teacher
	vm.isAdmin = info.Admin
	vm.isParticipate = sess.HasParticipant(info.ID)
	return nil
}

func (vm *DetailViewModel) setStateLocked(s State) {
	vm.state = s
	if vm.OnStateChange != nil {
		vm.OnStateChange(s)
	}
}

// State returns the current lifecycle phase.
func (vm *DetailViewModel) State() State {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

// Session returns the loaded session snapshot, nil before the first
// successful Load.
func (vm *DetailViewModel) Session() *model.Session {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.session
}

// Teacher returns the teacher assigned to the loaded session.
func (vm *DetailViewModel) Teacher() *model.Teacher {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.teacher
}

// IsAdmin reports whether the ambient user is an admin. The delete
// action is shown only in that case.
func (vm *DetailViewModel) IsAdmin() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.isAdmin
}

// IsParticipate reports whether the ambient user id is a member of the
// loaded session's participant set.
func (vm *DetailViewModel) IsParticipate() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.isParticipate
}

// CanParticipate reports whether the participate action should be shown:
// non-admin and not yet participating.
func (vm *DetailViewModel) CanParticipate() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state == StateReady && !vm.isAdmin && !vm.isParticipate
}

// CanUnParticipate reports whether the un-participate action should be
// shown: non-admin and currently participating.
func (vm *DetailViewModel) CanUnParticipate() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state == StateReady && !vm.isAdmin && vm.isParticipate
}

// Participate joins the current user to the session, then re-fetches the
// session and teacher before updating the derived flags. A failed
// re-fetch keeps the stale pre-action snapshot and surfaces the error.
func (vm *DetailViewModel) Participate(ctx context.Context) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	info, ok := vm.store.Information()
	if !ok {
		return ErrNotLoggedIn
	}
	if vm.state != StateReady {
		return ErrNotLoaded
	}
	if vm.isAdmin {
		return ErrNonAdminOnly
	}
	if vm.isParticipate {
		return ErrAlreadyParticipating
	}

	vm.setStateLocked(StatePending)
	defer vm.setStateLocked(StateReady)

	if err := vm.sessions.Participate(ctx, vm.sessionID, info.ID); err != nil {
		return fmt.Errorf("participate: %w", err)
	}
	return vm.fetchLocked(ctx)
}

// UnParticipate removes the current user from the session, then
// re-fetches before updating the derived flags.
func (vm *DetailViewModel) UnParticipate(ctx context.Context) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	info, ok := vm.store.Information()
	if !ok {
		return ErrNotLoggedIn
	}
	if vm.state != StateReady {
		return ErrNotLoaded
	}
	if vm.isAdmin {
		return ErrNonAdminOnly
	}
	if !vm.isParticipate {
		return ErrNotParticipating
	}

	vm.setStateLocked(StatePending)
	defer vm.setStateLocked(StateReady)

	if err := vm.sessions.UnParticipate(ctx, vm.sessionID, info.ID); err != nil {
		return fmt.Errorf("unparticipate: %w", err)
	}
	return vm.fetchLocked(ctx)
}

// Delete removes the session entirely. Admin only. On success the
// presenter is notified and navigation returns to the session list.
func (vm *DetailViewModel) Delete(ctx context.Context) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.state != StateReady {
		return ErrNotLoaded
	}
	if !vm.isAdmin {
		return ErrAdminOnly
	}

	if err := vm.sessions.Delete(ctx, vm.sessionID); err != nil {
		return fmt.Errorf("delete session %d: %w", vm.sessionID, err)
	}

	vm.notifier.Notify("Session deleted !")
	vm.nav.Navigate("/sessions")
	return nil
}

// Back returns to the previous view.
func (vm *DetailViewModel) Back() {
	vm.nav.Back()
}
