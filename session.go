package dashboard

import (
	"errors"
	"strings"
)

// ErrEmptyUsername is returned when signing in with a blank username.
var ErrEmptyUsername = errors.New("please enter a username")

// Session tracks the active user identity. The identity is restored from the
// store when the session is created and persisted on sign-in. Signing out
// only clears the in-memory reference: the persisted key survives, so the
// next session resolves the same user again. Forget removes the key too.
type Session struct {
	store *Store
	user  string // empty means signed out
}

// NewSession creates a session over the store, restoring any persisted
// active user.
func NewSession(store *Store) *Session {
	s := &Session{store: store}
	if user, ok := store.Get(KeyActiveUser); ok {
		s.user = strings.TrimSpace(user)
	}
	return s
}

// ActiveUser returns the identity currently treated as signed in.
// The boolean is false when no user is active.
func (s *Session) ActiveUser() (string, bool) {
	return s.user, s.user != ""
}

// SignIn sets the active user to the trimmed username and persists it.
// It returns the trimmed username, or ErrEmptyUsername when it trims empty,
// in which case nothing changes.
func (s *Session) SignIn(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrEmptyUsername
	}
	if err := s.store.Set(KeyActiveUser, username); err != nil {
		return "", err
	}
	s.user = username
	return username, nil
}

// SignOut clears the in-memory identity. The persisted key is deliberately
// left in place so a fresh session still resolves the same user.
func (s *Session) SignOut() {
	s.user = ""
}

// Forget signs out and removes the persisted identity as well.
func (s *Session) Forget() error {
	s.SignOut()
	return s.store.Remove(KeyActiveUser)
}
