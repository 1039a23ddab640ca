package identity

import (
	"context"
	"testing"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// fakeSessionRepo is an in-memory store.SessionRepo.
type fakeSessionRepo struct {
	userID string
}

func (f *fakeSessionRepo) Current(context.Context) (string, error) { return f.userID, nil }
func (f *fakeSessionRepo) Set(_ context.Context, id string) error  { f.userID = id; return nil }
func (f *fakeSessionRepo) Clear(context.Context) error             { f.userID = ""; return nil }

func TestLookup(t *testing.T) {
	u, ok := Lookup("teacher1")
	if !ok {
		t.Fatal("expected teacher1 in directory")
	}
	if u.Role != quiz.RoleTeacher {
		t.Fatalf("expected teacher role, got %s", u.Role)
	}
	if _, ok := Lookup("nobody"); ok {
		t.Fatal("unexpected directory hit for unknown id")
	}
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSessionRepo{}
	s, err := NewSession(ctx, repo)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.Current() != nil {
		t.Fatal("expected logged-out session")
	}

	if err := s.Login(ctx, "student1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := s.Current(); got == nil || got.ID != "student1" {
		t.Fatalf("expected student1 current, got %+v", got)
	}
	if repo.userID != "student1" {
		t.Fatalf("login not persisted: %q", repo.userID)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if s.Current() != nil {
		t.Fatal("expected nil current after logout")
	}
	if repo.userID != "" {
		t.Fatalf("logout not persisted: %q", repo.userID)
	}
}

func TestLoginUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSessionRepo{}
	s, _ := NewSession(ctx, repo)

	if err := s.Login(ctx, "nobody"); err != nil {
		t.Fatalf("login unknown: %v", err)
	}
	if s.Current() != nil {
		t.Fatal("unknown id must not log anyone in")
	}
	if repo.userID != "" {
		t.Fatal("unknown id must not be persisted")
	}
}

func TestSessionRestoresPersistedUser(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSessionRepo{userID: "student2"}
	s, err := NewSession(ctx, repo)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if got := s.Current(); got == nil || got.ID != "student2" {
		t.Fatalf("expected restored student2, got %+v", got)
	}
}

func TestSessionDiscardsStalePersistedUser(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSessionRepo{userID: "long-gone"}
	s, err := NewSession(ctx, repo)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.Current() != nil {
		t.Fatal("stale persisted id must not log in")
	}
}
