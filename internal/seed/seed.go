package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/yaml.v3"
)

type Fixture struct {
	Users    []UserSeed    `yaml:"users"`
	Listings []ListingSeed `yaml:"listings"`
}

type UserSeed struct {
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	Password       string `yaml:"password"`
	Role           string `yaml:"role"`
	TelegramChatID *int64 `yaml:"telegram_chat_id"`
}

type ListingSeed struct {
	OwnerEmail  string   `yaml:"owner_email"`
	Title       string   `yaml:"title"`
	Location    string   `yaml:"location"`
	Type        string   `yaml:"type"`
	Price       float64  `yaml:"price"`
	Image       string   `yaml:"image"`
	Description string   `yaml:"description"`
	Distance    string   `yaml:"distance"`
	Tags        []string `yaml:"tags"`
}

func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

type signupper interface {
	Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error)
}

type userFinder interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type listingPublisher interface {
	List(ctx context.Context) ([]*domain.Listing, error)
	Publish(ctx context.Context, actor *domain.User, input domain.CreateListingInput) (*domain.Listing, error)
}

// Seeder loads demo users and listings into an empty store.
type Seeder struct {
	sessions signupper
	users    userFinder
	listings listingPublisher
	logger   logger.Logger
}

func NewSeeder(sessions signupper, users userFinder, listings listingPublisher, logger logger.Logger) *Seeder {
	return &Seeder{
		sessions: sessions,
		users:    users,
		listings: listings,
		logger:   logger,
	}
}

// Apply is a no-op once any listing exists. Users that are already
// registered are reused as listing owners.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) error {
	existing, err := s.listings.List(ctx)
	if err != nil {
		return fmt.Errorf("list listings: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Debug("seed skipped, listings already present", logger.Int("listings", len(existing)))
		return nil
	}

	owners := make(map[string]*domain.User, len(f.Users))
	for _, us := range f.Users {
		u, err := s.ensureUser(ctx, us)
		if err != nil {
			return err
		}
		owners[u.Email] = u
	}

	for _, ls := range f.Listings {
		email := strings.ToLower(strings.TrimSpace(ls.OwnerEmail))
		owner, ok := owners[email]
		if !ok {
			return fmt.Errorf("%w: listing %q references unknown owner %q", domain.ErrValidation, ls.Title, ls.OwnerEmail)
		}

		_, err := s.listings.Publish(ctx, owner, domain.CreateListingInput{
			Title:       ls.Title,
			Location:    ls.Location,
			Type:        ls.Type,
			Price:       ls.Price,
			Image:       ls.Image,
			Description: ls.Description,
			Distance:    ls.Distance,
			Tags:        ls.Tags,
		})
		if err != nil {
			return fmt.Errorf("seed listing %q: %w", ls.Title, err)
		}
	}

	s.logger.Info("seed applied",
		logger.Int("users", len(f.Users)),
		logger.Int("listings", len(f.Listings)),
	)
	return nil
}

func (s *Seeder) ensureUser(ctx context.Context, us UserSeed) (*domain.User, error) {
	u, err := s.sessions.Signup(ctx, domain.SignupInput{
		Name:           us.Name,
		Email:          us.Email,
		Password:       us.Password,
		Role:           us.Role,
		TelegramChatID: us.TelegramChatID,
	})
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		return nil, fmt.Errorf("seed user %q: %w", us.Email, err)
	}

	u, err = s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(us.Email)))
	if err != nil {
		return nil, fmt.Errorf("lookup seeded user %q: %w", us.Email, err)
	}
	return u, nil
}
