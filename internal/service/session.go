package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

type SessionService struct {
	// mu guards every read-modify-write of the persisted session.
	mu       sync.Mutex
	users    ports.UserRepo
	sessions ports.SessionRepo
	hashCost int
	logger   logger.Logger
}

func NewSessionService(
	users ports.UserRepo,
	sessions ports.SessionRepo,
	hashCost int,
	logger logger.Logger,
) *SessionService {
	return &SessionService{
		users:    users,
		sessions: sessions,
		hashCost: hashCost,
		logger:   logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a user. It does not start a session.
func (s *SessionService) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if len(input.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password is longer than %d bytes", domain.ErrValidation, maxPasswordBytes)
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		PasswordHash:   string(hash),
		Role:           role,
		Wishlist:       []string{},
		Bookings:       []domain.Booking{},
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user signed up",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return user.Clone(), nil
}

// Login checks the credentials and stores a snapshot of the user as the
// active session.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{User: *user.Clone(), StartedAt: time.Now().UTC()}
	s.mu.Lock()
	err = s.sessions.Set(ctx, session)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s.logger.Info("user logged in", logger.String("user_id", user.ID))

	return user, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CurrentUser returns the session snapshot, or nil when nobody is logged in.
func (s *SessionService) CurrentUser(ctx context.Context) (*domain.User, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session.User.Clone(), nil
}

func (s *SessionService) IsLoggedIn(ctx context.Context) bool {
	u, err := s.CurrentUser(ctx)
	return err == nil && u != nil
}

// Refresh overwrites the session snapshot with updated.
func (s *SessionService) Refresh(ctx context.Context, updated *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	startedAt := time.Now().UTC()
	if current, err := s.sessions.Get(ctx); err == nil {
		startedAt = current.StartedAt
	} else if !errors.Is(err, domain.ErrNotLoggedIn) {
		return fmt.Errorf("get session: %w", err)
	}

	if err := s.sessions.Set(ctx, &domain.Session{User: *updated.Clone(), StartedAt: startedAt}); err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}
	return nil
}

// Sync refreshes the snapshot only when the active session belongs to
// updated. Mutating services call it right after persisting a user.
func (s *SessionService) Sync(ctx context.Context, updated *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			return nil
		}
		return fmt.Errorf("get session: %w", err)
	}
	if current.User.ID != updated.ID {
		return nil
	}

	if err = s.sessions.Set(ctx, &domain.Session{User: *updated.Clone(), StartedAt: current.StartedAt}); err != nil {
		return fmt.Errorf("sync session: %w", err)
	}
	return nil
}

// ExpireStale clears a session older than ttl and reports whether it did.
func (s *SessionService) ExpireStale(ctx context.Context, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			return false, nil
		}
		return false, fmt.Errorf("get session: %w", err)
	}

	if time.Since(current.StartedAt) <= ttl {
		return false, nil
	}

	if err = s.sessions.Clear(ctx); err != nil {
		return false, fmt.Errorf("expire session: %w", err)
	}

	s.logger.Info("session expired",
		logger.String("user_id", current.User.ID),
		logger.Duration("ttl", ttl),
	)

	return true, nil
}
