package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(id, email string, role domain.Role) *domain.User {
	return &domain.User{
		ID:           id,
		Name:         "user " + id,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepo(memory.New(), "mec")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("u1", "a@campus.edu", domain.RoleStudent)))

	byID, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@campus.edu", byID.Email)
	assert.Equal(t, domain.RoleStudent, byID.Role)
	assert.Empty(t, byID.Wishlist)
	assert.Empty(t, byID.Bookings)

	byEmail, err := repo.GetByEmail(ctx, "a@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepo(memory.New(), "mec")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("u1", "a@campus.edu", domain.RoleStudent)))
	err := repo.Create(ctx, newUser("u2", "a@campus.edu", domain.RoleOwner))

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepo(memory.New(), "mec")
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.Modify(ctx, "missing", func(*domain.User) error { return nil })
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_ModifyPersists(t *testing.T) {
	repo := NewUserRepo(memory.New(), "mec")
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newUser("u1", "a@campus.edu", domain.RoleStudent)))

	updated, err := repo.Modify(ctx, "u1", func(u *domain.User) error {
		u.Wishlist = append(u.Wishlist, "l1")
		u.Email = "hijack@campus.edu"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"l1"}, updated.Wishlist)
	assert.Equal(t, "a@campus.edu", updated.Email)

	stored, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"l1"}, stored.Wishlist)
}

func TestUserRepository_ModifyErrorWritesNothing(t *testing.T) {
	repo := NewUserRepo(memory.New(), "mec")
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newUser("u1", "a@campus.edu", domain.RoleStudent)))

	boom := errors.New("boom")
	_, err := repo.Modify(ctx, "u1", func(u *domain.User) error {
		u.Name = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "user u1", stored.Name)
}

func TestUserRepository_ReturnsSnapshots(t *testing.T) {
	repo := NewUserRepo(memory.New(), "mec")
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newUser("u1", "a@campus.edu", domain.RoleStudent)))

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	u.Wishlist = append(u.Wishlist, "l9")

	again, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, again.Wishlist)
}

func TestUserRepository_BookingsRoundTrip(t *testing.T) {
	repo := NewUserRepo(memory.New(), "mec")
	ctx := context.Background()
	u := newUser("u1", "a@campus.edu", domain.RoleStudent)
	date := time.Date(2026, time.April, 2, 9, 30, 0, 0, time.UTC)
	u.Bookings = []domain.Booking{{ListingID: "l1", Status: domain.BookingStatusConfirmed, Date: date}}
	chat := int64(42)
	u.TelegramChatID = &chat
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got.Bookings, 1)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Bookings[0].Status)
	assert.True(t, got.Bookings[0].Date.Equal(date))
	require.NotNil(t, got.TelegramChatID)
	assert.Equal(t, int64(42), *got.TelegramChatID)
}
