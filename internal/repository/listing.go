package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/storage"
)

// ListingRepository is a plain append-only store: no dedupe, no foreign
// key checks.
type ListingRepository struct {
	mu       sync.Mutex
	listings collection[listingRecord]
}

func NewListingRepo(store storage.Store, namespace string) *ListingRepository {
	return &ListingRepository{
		listings: collection[listingRecord]{store: store, key: Key(namespace, listingsKey)},
	}
}

func (r *ListingRepository) Add(ctx context.Context, l *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.listings.load(ctx)
	if err != nil {
		return fmt.Errorf("add listing: %w", err)
	}

	records = append(records, toListingRecord(l))
	if err = r.listings.save(ctx, records); err != nil {
		return fmt.Errorf("add listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.listings.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	res := make([]*domain.Listing, 0, len(records))
	for _, rec := range records {
		res = append(res, rec.toDomain())
	}

	return res, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.listings.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	for _, rec := range records {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}

	return nil, domain.ErrListingNotFound
}
