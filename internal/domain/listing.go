package domain

import (
	"slices"
	"time"
)

const (
	DefaultListingImage    = "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?auto=format&fit=crop&w=500&q=60"
	DefaultListingDistance = "Near Campus"
	VerifiedTag            = "Verified"

	FallbackOwnerName  = "Verified Owner"
	FallbackOwnerEmail = "support@mechanven.com"
)

type Listing struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Distance    string    `json:"distance"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

func (l *Listing) Clone() *Listing {
	if l == nil {
		return nil
	}
	c := *l
	c.Tags = slices.Clone(l.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return &c
}

type CreateListingInput struct {
	Title       string
	Location    string
	Type        string
	Price       float64
	Image       string
	Description string
	Distance    string
	Tags        []string
}

// ListingCriteria drives the explore view. Empty strings and a nil MaxPrice
// disable the corresponding predicate.
type ListingCriteria struct {
	SearchText string
	Type       string
	MaxPrice   *float64
}

type OwnerContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ListingDetails struct {
	Listing Listing      `json:"listing"`
	Owner   OwnerContact `json:"owner"`
}

type Dashboard struct {
	Role     Role            `json:"role"`
	Welcome  string          `json:"welcome"`
	Listings []Listing       `json:"listings,omitzero"`
	Wishlist []Listing       `json:"wishlist,omitzero"`
	Bookings []BookedListing `json:"bookings,omitzero"`
}
