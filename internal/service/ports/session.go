package ports

import (
	"context"

	"github.com/stpnv0/CampusHaven/internal/domain"
)

type SessionRepo interface {
	Get(ctx context.Context) (*domain.Session, error)
	Set(ctx context.Context, s *domain.Session) error
	Clear(ctx context.Context) error
}

// SessionSyncer refreshes the active session after a user mutation.
type SessionSyncer interface {
	Sync(ctx context.Context, updated *domain.User) error
}
