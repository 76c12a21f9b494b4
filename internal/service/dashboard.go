package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/CampusHaven/internal/domain"
)

type ownerListings interface {
	ByOwner(ctx context.Context, ownerID string) ([]*domain.Listing, error)
}

type wishlistReader interface {
	Items(ctx context.Context, user *domain.User) ([]*domain.Listing, error)
}

type bookingReader interface {
	BookedListings(ctx context.Context, user *domain.User) ([]domain.BookedListing, error)
}

type DashboardService struct {
	listings ownerListings
	wishlist wishlistReader
	bookings bookingReader
}

func NewDashboardService(listings ownerListings, wishlist wishlistReader, bookings bookingReader) *DashboardService {
	return &DashboardService{
		listings: listings,
		wishlist: wishlist,
		bookings: bookings,
	}
}

// Build assembles the role-specific dashboard for user.
func (s *DashboardService) Build(ctx context.Context, user *domain.User) (*domain.Dashboard, error) {
	if user == nil {
		return nil, domain.ErrNotLoggedIn
	}

	d := &domain.Dashboard{
		Role:    user.Role,
		Welcome: fmt.Sprintf("Welcome, %s", user.Name),
	}

	switch user.Role {
	case domain.RoleOwner, domain.RoleAdmin:
		own, err := s.listings.ByOwner(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("owner listings: %w", err)
		}
		d.Listings = derefListings(own)

	case domain.RoleStudent:
		saved, err := s.wishlist.Items(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("wishlist: %w", err)
		}
		booked, err := s.bookings.BookedListings(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("bookings: %w", err)
		}
		d.Wishlist = derefListings(saved)
		d.Bookings = booked

	case domain.RoleGuest:
		return nil, domain.ErrForbidden

	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrForbidden, user.Role)
	}

	return d, nil
}

func derefListings(in []*domain.Listing) []domain.Listing {
	res := make([]domain.Listing, 0, len(in))
	for _, l := range in {
		res = append(res, *l)
	}
	return res
}
