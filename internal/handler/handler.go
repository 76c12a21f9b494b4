package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SessionSvc interface {
	Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type ListingSvc interface {
	Publish(ctx context.Context, actor *domain.User, input domain.CreateListingInput) (*domain.Listing, error)
	Search(ctx context.Context, criteria domain.ListingCriteria) ([]*domain.Listing, error)
	Featured(ctx context.Context, n int) ([]*domain.Listing, error)
	Details(ctx context.Context, id string) (*domain.ListingDetails, error)
	Users(ctx context.Context) ([]*domain.User, error)
}

type BookingSvc interface {
	Book(ctx context.Context, userID, listingID string) (*domain.User, error)
}

type WishlistSvc interface {
	Toggle(ctx context.Context, userID, listingID string) (*domain.User, error)
}

type DashboardSvc interface {
	Build(ctx context.Context, user *domain.User) (*domain.Dashboard, error)
}

type Handler struct {
	sessionService   SessionSvc
	listingService   ListingSvc
	bookingService   BookingSvc
	wishlistService  WishlistSvc
	dashboardService DashboardSvc
}

func NewHandler(
	sessionService SessionSvc,
	listingService ListingSvc,
	bookingService BookingSvc,
	wishlistService WishlistSvc,
	dashboardService DashboardSvc,
) *Handler {
	return &Handler{
		sessionService:   sessionService,
		listingService:   listingService,
		bookingService:   bookingService,
		wishlistService:  wishlistService,
		dashboardService: dashboardService,
	}
}

// Auth

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.sessionService.Signup(c.Request.Context(), domain.SignupInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.sessionService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) Logout(c *ginext.Context) {
	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) GetSession(c *ginext.Context) {
	user, err := h.sessionService.CurrentUser(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, dto.SessionResponse{LoggedIn: false})
		return
	}

	resp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.SessionResponse{LoggedIn: true, User: &resp})
}

// Listings

func (h *Handler) ListListings(c *ginext.Context) {
	var q dto.ListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	criteria, err := toCriteria(q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	listings, err := h.listingService.Search(c.Request.Context(), criteria)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponses(listings))
}

func (h *Handler) FeaturedListings(c *ginext.Context) {
	n := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
			return
		}
		n = v
	}

	listings, err := h.listingService.Featured(c.Request.Context(), n)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponses(listings))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	details, err := h.listingService.Details(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingDetailsResponse(details))
}

func (h *Handler) CreateListing(c *ginext.Context) {
	actor, ok := h.requireUser(c)
	if !ok {
		return
	}
	if !actor.Role.CanManageListings() {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	listing, err := h.listingService.Publish(c.Request.Context(), actor, domain.CreateListingInput{
		Title:       req.Title,
		Location:    req.Location,
		Type:        req.Type,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Distance:    req.Distance,
		Tags:        req.Tags,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

// Bookings and wishlist

func (h *Handler) BookListing(c *ginext.Context) {
	listingID, actor, ok := h.studentAction(c)
	if !ok {
		return
	}

	user, err := h.bookingService.Book(c.Request.Context(), actor.ID, listingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ToggleWishlist(c *ginext.Context) {
	listingID, actor, ok := h.studentAction(c)
	if !ok {
		return
	}

	user, err := h.wishlistService.Toggle(c.Request.Context(), actor.ID, listingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WishlistResponse{
		Saved: user.InWishlist(listingID),
		User:  dto.ToUserResponse(user),
	})
}

// Dashboard and users

func (h *Handler) GetDashboard(c *ginext.Context) {
	actor, ok := h.requireUser(c)
	if !ok {
		return
	}

	d, err := h.dashboardService.Build(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(d))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.listingService.Users(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// requireUser writes 401 and returns false when nobody is logged in.
func (h *Handler) requireUser(c *ginext.Context) (*domain.User, bool) {
	user, err := h.sessionService.CurrentUser(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	if user == nil {
		h.handleError(c, domain.ErrNotLoggedIn)
		return nil, false
	}
	return user, true
}

func (h *Handler) studentAction(c *ginext.Context) (string, *domain.User, bool) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return "", nil, false
	}

	actor, ok := h.requireUser(c)
	if !ok {
		return "", nil, false
	}
	if !actor.Role.CanBook() {
		h.handleError(c, domain.ErrForbidden)
		return "", nil, false
	}
	return listingID, actor, true
}

func toCriteria(q dto.ListingQuery) (domain.ListingCriteria, error) {
	criteria := domain.ListingCriteria{
		SearchText: q.Search,
		Type:       q.Type,
	}

	raw := strings.TrimSpace(q.MaxPrice)
	if raw == "" {
		return criteria, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return criteria, fmt.Errorf("%w: max_price must be a number", domain.ErrValidation)
	}
	criteria.MaxPrice = &v
	return criteria, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
