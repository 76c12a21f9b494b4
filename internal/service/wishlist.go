package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type WishlistService struct {
	userRepo    ports.UserRepo
	listingRepo ports.ListingRepo
	sessions    ports.SessionSyncer
	logger      logger.Logger
}

func NewWishlistService(
	userRepo ports.UserRepo,
	listingRepo ports.ListingRepo,
	sessions ports.SessionSyncer,
	logger logger.Logger,
) *WishlistService {
	return &WishlistService{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		sessions:    sessions,
		logger:      logger,
	}
}

// Toggle adds or removes listingID. The listing is not looked up, so stale
// ids can still be removed.
func (s *WishlistService) Toggle(ctx context.Context, userID, listingID string) (*domain.User, error) {
	var saved bool
	user, err := s.userRepo.Modify(ctx, userID, func(u *domain.User) error {
		saved = u.ToggleWishlist(listingID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggle wishlist: %w", err)
	}

	if err = s.sessions.Sync(ctx, user); err != nil {
		s.logger.Error("failed to refresh session after wishlist toggle",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Debug("wishlist toggled",
		logger.String("user_id", userID),
		logger.String("listing_id", listingID),
		logger.Any("saved", saved),
	)

	return user, nil
}

// Items returns the saved listings that still exist, in listing order.
func (s *WishlistService) Items(ctx context.Context, user *domain.User) ([]*domain.Listing, error) {
	listings, err := s.listingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	res := make([]*domain.Listing, 0, len(user.Wishlist))
	for _, l := range listings {
		if user.InWishlist(l.ID) {
			res = append(res, l)
		}
	}

	return res, nil
}
