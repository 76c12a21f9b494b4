package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/storage"
)

// SchemaVersion is written into every persisted envelope. Bump it together
// with a decoder for the previous layout.
const SchemaVersion = 1

const (
	usersKey    = "users"
	listingsKey = "listings"
	sessionKey  = "session"
)

var ErrUnsupportedSchema = errors.New("unsupported record schema version")

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

func Key(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + ":" + name
}

func encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return json.Marshal(envelope{Version: SchemaVersion, Data: data})
}

func decode(raw []byte, v any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != SchemaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedSchema, env.Version)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	return nil
}

// collection reads and writes one whole record list under a single key.
type collection[T any] struct {
	store storage.Store
	key   string
}

func (c collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	var items []T
	if err = decode(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return items, nil
}

func (c collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := encode(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err = c.store.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

type bookingRecord struct {
	ListingID string    `json:"listingId"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
}

type userRecord struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"passwordHash"`
	Role           string          `json:"role"`
	Wishlist       []string        `json:"wishlist"`
	Bookings       []bookingRecord `json:"bookings"`
	TelegramChatID *int64          `json:"telegramChatId,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type listingRecord struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Distance    string    `json:"distance"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

type sessionRecord struct {
	User      userRecord `json:"user"`
	StartedAt time.Time  `json:"startedAt"`
}

func toUserRecord(u *domain.User) userRecord {
	c := u.Clone()
	bookings := make([]bookingRecord, 0, len(c.Bookings))
	for _, b := range c.Bookings {
		bookings = append(bookings, bookingRecord{
			ListingID: b.ListingID,
			Status:    string(b.Status),
			Date:      b.Date.UTC(),
		})
	}
	return userRecord{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		PasswordHash:   c.PasswordHash,
		Role:           string(c.Role),
		Wishlist:       c.Wishlist,
		Bookings:       bookings,
		TelegramChatID: c.TelegramChatID,
		CreatedAt:      c.CreatedAt.UTC(),
	}
}

func (r userRecord) toDomain() (*domain.User, error) {
	role, err := domain.ParseRole(r.Role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", r.ID, err)
	}

	bookings := make([]domain.Booking, 0, len(r.Bookings))
	for _, b := range r.Bookings {
		status := domain.BookingStatus(b.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("user %s: unknown booking status %q", r.ID, b.Status)
		}
		bookings = append(bookings, domain.Booking{
			ListingID: b.ListingID,
			Status:    status,
			Date:      b.Date,
		})
	}

	u := &domain.User{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		PasswordHash:   r.PasswordHash,
		Role:           role,
		Wishlist:       r.Wishlist,
		Bookings:       bookings,
		TelegramChatID: r.TelegramChatID,
		CreatedAt:      r.CreatedAt,
	}
	return u.Clone(), nil
}

func toListingRecord(l *domain.Listing) listingRecord {
	c := l.Clone()
	return listingRecord{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Title:       c.Title,
		Location:    c.Location,
		Type:        c.Type,
		Price:       c.Price,
		Image:       c.Image,
		Description: c.Description,
		Distance:    c.Distance,
		Tags:        c.Tags,
		CreatedAt:   c.CreatedAt.UTC(),
	}
}

func (r listingRecord) toDomain() *domain.Listing {
	l := &domain.Listing{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Location:    r.Location,
		Type:        r.Type,
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
		Distance:    r.Distance,
		Tags:        r.Tags,
		CreatedAt:   r.CreatedAt,
	}
	return l.Clone()
}
