package store

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck/ent"
	entsession "github.com/quizdeck/quizdeck/ent/session"
)

// sessionRepo implements SessionRepo using the ent client. The session
// table holds at most one meaningful row; Set replaces it wholesale.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Current(ctx context.Context) (string, error) {
	row, err := r.client.Session.Query().
		Order(ent.Desc(entsession.FieldLoggedInAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query session: %w", err)
	}
	return row.UserID, nil
}

func (r *sessionRepo) Set(ctx context.Context, userID string) error {
	if _, err := r.client.Session.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear prior session: %w", err)
	}
	if _, err := r.client.Session.Create().SetUserID(userID).Save(ctx); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Session.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
