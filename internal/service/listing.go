package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/search"
	"github.com/stpnv0/CampusHaven/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const DefaultFeaturedCount = 3

type ListingService struct {
	repo     ports.ListingRepo
	userRepo ports.UserRepo
	logger   logger.Logger
}

func NewListingService(repo ports.ListingRepo, userRepo ports.UserRepo, logger logger.Logger) *ListingService {
	return &ListingService{
		repo:     repo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Publish creates a listing owned by actor. Only owners and admins may publish.
func (s *ListingService) Publish(ctx context.Context, actor *domain.User, input domain.CreateListingInput) (*domain.Listing, error) {
	if actor == nil {
		return nil, domain.ErrNotLoggedIn
	}
	if !actor.Role.CanManageListings() {
		return nil, domain.ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	location := strings.TrimSpace(input.Location)
	listingType := strings.TrimSpace(input.Type)

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if listingType == "" {
		return nil, fmt.Errorf("%w: type is required", domain.ErrValidation)
	}
	if input.Price < 0 || math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		return nil, fmt.Errorf("%w: price must be a non-negative number", domain.ErrValidation)
	}

	image := strings.TrimSpace(input.Image)
	if image == "" {
		image = domain.DefaultListingImage
	}
	distance := strings.TrimSpace(input.Distance)
	if distance == "" {
		distance = domain.DefaultListingDistance
	}
	tags := input.Tags
	if len(tags) == 0 {
		tags = []string{listingType, domain.VerifiedTag}
	}

	listing := &domain.Listing{
		ID:          uuid.New().String(),
		OwnerID:     actor.ID,
		Title:       title,
		Location:    location,
		Type:        listingType,
		Price:       input.Price,
		Image:       image,
		Description: strings.TrimSpace(input.Description),
		Distance:    distance,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Add(ctx, listing); err != nil {
		return nil, fmt.Errorf("add listing: %w", err)
	}

	s.logger.Info("listing published",
		logger.String("listing_id", listing.ID),
		logger.String("owner_id", actor.ID),
	)

	return listing.Clone(), nil
}

func (s *ListingService) List(ctx context.Context) ([]*domain.Listing, error) {
	return s.repo.List(ctx)
}

func (s *ListingService) Search(ctx context.Context, criteria domain.ListingCriteria) ([]*domain.Listing, error) {
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(listings, criteria), nil
}

// Featured returns the first n listings in storage order.
func (s *ListingService) Featured(ctx context.Context, n int) ([]*domain.Listing, error) {
	if n <= 0 {
		n = DefaultFeaturedCount
	}
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(listings) > n {
		listings = listings[:n]
	}
	return listings, nil
}

func (s *ListingService) ByOwner(ctx context.Context, ownerID string) ([]*domain.Listing, error) {
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Listing, 0)
	for _, l := range listings {
		if l.OwnerID == ownerID {
			res = append(res, l)
		}
	}
	return res, nil
}

// Details resolves the listing and its owner's contact. An unknown owner
// falls back to the support contact.
func (s *ListingService) Details(ctx context.Context, id string) (*domain.ListingDetails, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contact := domain.OwnerContact{Name: domain.FallbackOwnerName, Email: domain.FallbackOwnerEmail}
	owner, err := s.userRepo.GetByID(ctx, listing.OwnerID)
	switch {
	case err == nil:
		contact = domain.OwnerContact{Name: owner.Name, Email: owner.Email}
	case errors.Is(err, domain.ErrUserNotFound):
	default:
		return nil, fmt.Errorf("get owner: %w", err)
	}

	return &domain.ListingDetails{Listing: *listing, Owner: contact}, nil
}

func (s *ListingService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
