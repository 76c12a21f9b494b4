package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/storage"
)

// SessionRepository holds at most one session snapshot.
type SessionRepository struct {
	store storage.Store
	key   string
}

func NewSessionRepo(store storage.Store, namespace string) *SessionRepository {
	return &SessionRepository{store: store, key: Key(namespace, sessionKey)}
}

// Get returns domain.ErrNotLoggedIn when no session is stored.
func (r *SessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, domain.ErrNotLoggedIn
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var rec sessionRecord
	if err = decode(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	u, err := rec.User.toDomain()
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &domain.Session{User: *u, StartedAt: rec.StartedAt}, nil
}

func (r *SessionRepository) Set(ctx context.Context, s *domain.Session) error {
	raw, err := encode(sessionRecord{
		User:      toUserRecord(&s.User),
		StartedAt: s.StartedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = r.store.Put(ctx, r.key, raw); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
