package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/session"
)

// ListViewModel drives the session list screen. Create and edit entry
// points are admin-only; detail is visible to everyone.
type ListViewModel struct {
	sessions SessionAPI
	store    *session.Store

	mu     sync.Mutex
	loaded []model.Session
}

// NewListViewModel creates the session list view-model.
func NewListViewModel(sessions SessionAPI, store *session.Store) *ListViewModel {
	return &ListViewModel{sessions: sessions, store: store}
}

// Load fetches all sessions. Called on every view entry.
func (vm *ListViewModel) Load(ctx context.Context) error {
	if !vm.store.IsLogged() {
		return ErrNotLoggedIn
	}

	sessions, err := vm.sessions.All(ctx)
	if err != nil {
		return fmt.Errorf("fetch sessions: %w", err)
	}

	vm.mu.Lock()
	vm.loaded = sessions
	vm.mu.Unlock()
	return nil
}

// Sessions returns the loaded session list.
func (vm *ListViewModel) Sessions() []model.Session {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loaded
}

// IsAdmin reports whether the ambient user may create or edit sessions.
func (vm *ListViewModel) IsAdmin() bool {
	info, ok := vm.store.Information()
	return ok && info.Admin
}
