// Package session holds the ambient identity of the authenticated user.
//
// The store is explicitly injected rather than global: login/register
// flows write it, view-models only read it. It doubles as the bearer
// token source for the API client.
package session

import "sync"

// Information is the process-wide record of the authenticated user.
type Information struct {
	Token     string
	Type      string
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Admin     bool
}

// Store is a concurrency-safe holder for the current Information.
// The zero value is a logged-out store.
type Store struct {
	mu       sync.RWMutex
	info     *Information
	watchers []func(loggedIn bool)
}

// NewStore creates an empty (logged-out) store.
func NewStore() *Store {
	return &Store{}
}

// Login records info as the current identity and notifies watchers.
func (s *Store) Login(info Information) {
	s.mu.Lock()
	copied := info
	s.info = &copied
	watchers := s.watchers
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(true)
	}
}

// Logout clears the current identity and notifies watchers.
func (s *Store) Logout() {
	s.mu.Lock()
	s.info = nil
	watchers := s.watchers
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(false)
	}
}

// Information returns a copy of the current identity. ok is false when
// no user is logged in.
func (s *Store) Information() (info Information, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.info == nil {
		return Information{}, false
	}
	return *s.info, true
}

// IsLogged reports whether a user is currently authenticated.
func (s *Store) IsLogged() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info != nil
}

// Token implements apiclient.TokenSource. Empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.info == nil {
		return ""
	}
	return s.info.Token
}

// Subscribe registers fn to run on every login/logout transition.
// Intended for wiring UI chrome (e.g. showing the logout entry); fn runs
// on the caller's goroutine.
func (s *Store) Subscribe(fn func(loggedIn bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}
