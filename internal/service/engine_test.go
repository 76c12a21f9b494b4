package service

import (
	"context"
	"testing"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_BookWishlistFilterFlow(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	a := e.signup(t, "Asha", "asha@campus.edu", domain.RoleStudent)
	b := e.signup(t, "Ravi", "ravi@campus.edu", domain.RoleOwner)

	x, err := e.listing.Publish(ctx, b, domain.CreateListingInput{
		Title: "Sunrise PG", Location: "North Gate", Type: "PG", Price: 4000,
	})
	require.NoError(t, err)

	_, err = e.session.Login(ctx, "asha@campus.edu", "secret-Asha")
	require.NoError(t, err)

	afterBooking, err := e.booking.Book(ctx, a.ID, x.ID)
	require.NoError(t, err)
	require.Len(t, afterBooking.Bookings, 1)
	assert.Equal(t, domain.BookingStatusPending, afterBooking.Bookings[0].Status)

	afterToggle, err := e.wishlist.Toggle(ctx, a.ID, x.ID)
	require.NoError(t, err)
	assert.Contains(t, afterToggle.Wishlist, x.ID)
	assert.Len(t, afterToggle.Bookings, 1)

	// the session already reflects both mutations
	current, err := e.session.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, afterToggle.Wishlist, current.Wishlist)
	assert.Len(t, current.Bookings, 1)

	capped := 3000.0
	got := search.Filter([]*domain.Listing{x}, domain.ListingCriteria{Type: "PG", MaxPrice: &capped})
	assert.Empty(t, got)
}

func TestEngine_DoubleToggleRemoves(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	a := e.signup(t, "Asha", "asha@campus.edu", domain.RoleStudent)

	_, err := e.wishlist.Toggle(ctx, a.ID, "l1")
	require.NoError(t, err)
	u, err := e.wishlist.Toggle(ctx, a.ID, "l1")
	require.NoError(t, err)

	assert.NotContains(t, u.Wishlist, "l1")
}

func TestEngine_RepeatedBookingAppendsAgain(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	a := e.signup(t, "Asha", "asha@campus.edu", domain.RoleStudent)
	require.NoError(t, e.listings.Add(ctx, &domain.Listing{ID: "l1", Title: "PG"}))

	_, err := e.booking.Book(ctx, a.ID, "l1")
	require.NoError(t, err)
	u, err := e.booking.Book(ctx, a.ID, "l1")
	require.NoError(t, err)

	require.Len(t, u.Bookings, 2)
	for _, b := range u.Bookings {
		assert.Equal(t, "l1", b.ListingID)
		assert.Equal(t, domain.BookingStatusPending, b.Status)
	}
}

func TestEngine_SessionOfOtherUserUntouched(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	a := e.signup(t, "Asha", "asha@campus.edu", domain.RoleStudent)
	e.signup(t, "Bala", "bala@campus.edu", domain.RoleStudent)

	_, err := e.session.Login(ctx, "bala@campus.edu", "secret-Bala")
	require.NoError(t, err)

	_, err = e.wishlist.Toggle(ctx, a.ID, "l1")
	require.NoError(t, err)

	current, err := e.session.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bala@campus.edu", current.Email)
	assert.Empty(t, current.Wishlist)
}
