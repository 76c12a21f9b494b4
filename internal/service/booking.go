package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	userRepo    ports.UserRepo
	listingRepo ports.ListingRepo
	sessions    ports.SessionSyncer
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	userRepo ports.UserRepo,
	listingRepo ports.ListingRepo,
	sessions ports.SessionSyncer,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		sessions:    sessions,
		notifier:    notifier,
		logger:      logger,
	}
}

// Book appends a pending booking to the user and returns the updated user.
// Repeated calls for the same pair append further bookings.
func (s *BookingService) Book(ctx context.Context, userID, listingID string) (*domain.User, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}

	user, err := s.userRepo.Modify(ctx, userID, func(u *domain.User) error {
		u.Bookings = append(u.Bookings, domain.Booking{
			ListingID: listingID,
			Status:    domain.BookingStatusPending,
			Date:      time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("append booking: %w", err)
	}

	// the booking is stored by now, so a session refresh failure is only logged
	if err = s.sessions.Sync(ctx, user); err != nil {
		s.logger.Error("failed to refresh session after booking",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("booking requested",
		logger.String("listing_id", listingID),
		logger.String("user_id", userID),
		logger.Int("bookings", len(user.Bookings)),
	)

	go s.notifyOwner(context.WithoutCancel(ctx), user.Clone(), listing)

	return user, nil
}

func (s *BookingService) notifyOwner(ctx context.Context, student *domain.User, listing *domain.Listing) {
	owner, err := s.userRepo.GetByID(ctx, listing.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for booking notification",
			logger.String("owner_id", listing.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyBookingRequested(ctx, owner, student, listing)
}

// BookedListings joins the user's bookings with their listings, in booking
// order. Bookings whose listing no longer resolves are skipped.
func (s *BookingService) BookedListings(ctx context.Context, user *domain.User) ([]domain.BookedListing, error) {
	listings, err := s.listingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	byID := make(map[string]*domain.Listing, len(listings))
	for _, l := range listings {
		if _, ok := byID[l.ID]; !ok {
			byID[l.ID] = l
		}
	}

	res := make([]domain.BookedListing, 0, len(user.Bookings))
	for _, b := range user.Bookings {
		l, ok := byID[b.ListingID]
		if !ok {
			continue
		}
		res = append(res, domain.BookedListing{
			Listing: *l,
			Status:  b.Status,
			Date:    b.Date,
		})
	}

	return res, nil
}
