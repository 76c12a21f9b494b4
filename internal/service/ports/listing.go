package ports

import (
	"context"

	"github.com/stpnv0/CampusHaven/internal/domain"
)

type ListingRepo interface {
	Add(ctx context.Context, l *domain.Listing) error
	List(ctx context.Context) ([]*domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
}
