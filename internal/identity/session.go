package identity

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/store"
)

// Session tracks the currently logged-in user for the life of the UI
// and persists it through the SessionRepo. It is threaded explicitly
// through the screens that need it; there is no ambient global.
type Session struct {
	repo    store.SessionRepo
	current *quiz.User
}

// NewSession creates a Session initialized from persisted storage.
// A persisted id that is no longer in the directory is discarded.
func NewSession(ctx context.Context, repo store.SessionRepo) (*Session, error) {
	s := &Session{repo: repo}

	id, err := repo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if id != "" {
		if u, ok := Lookup(id); ok {
			s.current = &u
		}
	}
	return s, nil
}

// Current returns the logged-in user, or nil when logged out.
func (s *Session) Current() *quiz.User {
	return s.current
}

// Login sets the user with the given id as current and persists it.
// An unknown id is silently ignored: the caller stays logged out.
func (s *Session) Login(ctx context.Context, userID string) error {
	u, ok := Lookup(userID)
	if !ok {
		return nil
	}
	if err := s.repo.Set(ctx, u.ID); err != nil {
		return fmt.Errorf("persist login: %w", err)
	}
	s.current = &u
	return nil
}

// Logout clears the current user and the persisted value.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear login: %w", err)
	}
	s.current = nil
	return nil
}
