package viewmodel

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/session"
)

// longDateFormat renders timestamps the way the profile screen displays
// them, e.g. "August 29, 2026".
const longDateFormat = "January 2, 2006"

// MeViewModel drives the user profile screen. It fetches the user
// behind the ambient identity and exposes the delete-account action.
// Admins see a badge instead of the delete section and cannot
// self-delete through this view.
type MeViewModel struct {
	users    UserAPI
	store    *session.Store
	nav      Navigator
	notifier Notifier

	mu   sync.Mutex
	user *model.User
}

// NewMeViewModel creates the profile view-model.
func NewMeViewModel(users UserAPI, store *session.Store, nav Navigator, notifier Notifier) *MeViewModel {
	return &MeViewModel{users: users, store: store, nav: nav, notifier: notifier}
}

// Load fetches the user identified by the ambient session state.
func (vm *MeViewModel) Load(ctx context.Context) error {
	info, ok := vm.store.Information()
	if !ok {
		return ErrNotLoggedIn
	}

	user, err := vm.users.GetByID(ctx, info.ID)
	if err != nil {
		return fmt.Errorf("fetch user %d: %w", info.ID, err)
	}

	vm.mu.Lock()
	vm.user = user
	vm.mu.Unlock()
	return nil
}

// User returns the loaded user, nil before a successful Load.
func (vm *MeViewModel) User() *model.User {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.user
}

// FullName renders the display name: first name followed by the
// uppercased last name.
func (vm *MeViewModel) FullName() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.user == nil {
		return ""
	}
	return vm.user.FirstName + " " + strings.ToUpper(vm.user.LastName)
}

// CreatedAtDisplay renders the account creation date in long form.
func (vm *MeViewModel) CreatedAtDisplay() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.user == nil {
		return ""
	}
	return formatLongDate(vm.user.CreatedAt)
}

// UpdatedAtDisplay renders the last-update date in long form.
func (vm *MeViewModel) UpdatedAtDisplay() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.user == nil {
		return ""
	}
	return formatLongDate(vm.user.UpdatedAt)
}

// IsAdmin reports whether the loaded user carries the admin flag, in
// which case the admin badge is shown and the delete section hidden.
func (vm *MeViewModel) IsAdmin() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.user != nil && vm.user.Admin
}

// CanDelete reports whether the delete-account section is visible:
// a user is loaded and is not an admin.
func (vm *MeViewModel) CanDelete() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.user != nil && !vm.user.Admin
}

// Delete removes the account behind the ambient identity, logs out, and
// navigates to the application root. Deletion is terminal; there is no
// undo.
func (vm *MeViewModel) Delete(ctx context.Context) error {
	info, ok := vm.store.Information()
	if !ok {
		return ErrNotLoggedIn
	}

	vm.mu.Lock()
	loaded := vm.user
	vm.mu.Unlock()
	if loaded == nil {
		return ErrNotLoaded
	}
	if loaded.Admin {
		return ErrNonAdminOnly
	}

	if err := vm.users.Delete(ctx, info.ID); err != nil {
		return fmt.Errorf("delete user %d: %w", info.ID, err)
	}

	vm.notifier.Notify("Your account has been deleted !")
	vm.store.Logout()
	vm.nav.Navigate("/")
	return nil
}

// Back returns to the previous view.
func (vm *MeViewModel) Back() {
	vm.nav.Back()
}

func formatLongDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(longDateFormat)
}
