package dto

import (
	"time"

	"github.com/stpnv0/CampusHaven/internal/domain"
)

type ListingResponse struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"owner_id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Distance    string   `json:"distance"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
}

type OwnerContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ListingDetailsResponse struct {
	Listing ListingResponse      `json:"listing"`
	Owner   OwnerContactResponse `json:"owner"`
}

type BookingResponse struct {
	ListingID string `json:"listing_id"`
	Status    string `json:"status"`
	Date      string `json:"date"`
}

type UserResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Role           string            `json:"role"`
	Wishlist       []string          `json:"wishlist"`
	Bookings       []BookingResponse `json:"bookings"`
	TelegramChatID *int64            `json:"telegram_chat_id,omitempty"`
	CreatedAt      string            `json:"created_at"`
}

type SessionResponse struct {
	LoggedIn bool          `json:"logged_in"`
	User     *UserResponse `json:"user,omitempty"`
}

type BookedListingResponse struct {
	Listing ListingResponse `json:"listing"`
	Status  string          `json:"status"`
	Date    string          `json:"date"`
}

type DashboardResponse struct {
	Role     string                  `json:"role"`
	Welcome  string                  `json:"welcome"`
	Listings []ListingResponse       `json:"listings,omitzero"`
	Wishlist []ListingResponse       `json:"wishlist,omitzero"`
	Bookings []BookedListingResponse `json:"bookings,omitzero"`
}

type WishlistResponse struct {
	Saved bool         `json:"saved"`
	User  UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}
	return ListingResponse{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Title:       l.Title,
		Location:    l.Location,
		Type:        l.Type,
		Price:       l.Price,
		Image:       l.Image,
		Description: l.Description,
		Distance:    l.Distance,
		Tags:        tags,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

func ToListingResponses(listings []*domain.Listing) []ListingResponse {
	resp := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, ToListingResponse(l))
	}
	return resp
}

func ToListingDetailsResponse(d *domain.ListingDetails) ListingDetailsResponse {
	return ListingDetailsResponse{
		Listing: ToListingResponse(&d.Listing),
		Owner: OwnerContactResponse{
			Name:  d.Owner.Name,
			Email: d.Owner.Email,
		},
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	bookings := make([]BookingResponse, 0, len(u.Bookings))
	for _, b := range u.Bookings {
		bookings = append(bookings, BookingResponse{
			ListingID: b.ListingID,
			Status:    string(b.Status),
			Date:      b.Date.Format(time.RFC3339),
		})
	}
	wishlist := u.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}

	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		Wishlist:       wishlist,
		Bookings:       bookings,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Role:    string(d.Role),
		Welcome: d.Welcome,
	}
	// a nil section does not apply to the role; an empty one renders as []
	if d.Listings != nil {
		resp.Listings = make([]ListingResponse, 0, len(d.Listings))
	}
	if d.Wishlist != nil {
		resp.Wishlist = make([]ListingResponse, 0, len(d.Wishlist))
	}
	if d.Bookings != nil {
		resp.Bookings = make([]BookedListingResponse, 0, len(d.Bookings))
	}
	for i := range d.Listings {
		resp.Listings = append(resp.Listings, ToListingResponse(&d.Listings[i]))
	}
	for i := range d.Wishlist {
		resp.Wishlist = append(resp.Wishlist, ToListingResponse(&d.Wishlist[i]))
	}
	for _, b := range d.Bookings {
		resp.Bookings = append(resp.Bookings, BookedListingResponse{
			Listing: ToListingResponse(&b.Listing),
			Status:  string(b.Status),
			Date:    b.Date.Format(time.RFC3339),
		})
	}
	return resp
}
