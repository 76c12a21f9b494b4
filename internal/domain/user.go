package domain

import (
	"slices"
	"time"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	Wishlist       []string  `json:"wishlist"`
	Bookings       []Booking `json:"bookings"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type SignupInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	TelegramChatID *int64
}

// Clone returns a deep copy. Every value handed out by a repository or the
// session is a clone, so callers never share state with storage.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Wishlist = slices.Clone(u.Wishlist)
	c.Bookings = slices.Clone(u.Bookings)
	if u.TelegramChatID != nil {
		id := *u.TelegramChatID
		c.TelegramChatID = &id
	}
	if c.Wishlist == nil {
		c.Wishlist = []string{}
	}
	if c.Bookings == nil {
		c.Bookings = []Booking{}
	}
	return &c
}

func (u *User) InWishlist(listingID string) bool {
	return slices.Contains(u.Wishlist, listingID)
}

// ToggleWishlist removes listingID if present, appends it otherwise, and
// reports whether it is saved afterwards.
func (u *User) ToggleWishlist(listingID string) bool {
	if i := slices.Index(u.Wishlist, listingID); i >= 0 {
		u.Wishlist = slices.Delete(u.Wishlist, i, i+1)
		return false
	}
	u.Wishlist = append(u.Wishlist, listingID)
	return true
}

// Session is the persisted snapshot of the authenticated user.
type Session struct {
	User      User      `json:"user"`
	StartedAt time.Time `json:"started_at"`
}
