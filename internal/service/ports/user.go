package ports

import (
	"context"

	"github.com/stpnv0/CampusHaven/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Modify(ctx context.Context, id string, fn func(u *domain.User) error) (*domain.User, error)
}
