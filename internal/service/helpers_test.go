package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/repository"
	"github.com/stpnv0/CampusHaven/internal/storage/memory"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) NotifyBookingRequested(_ context.Context, owner, student *domain.User, listing *domain.Listing) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, owner.ID+"|"+student.ID+"|"+listing.ID)
}

// engine wires the real repositories over in-memory stores.
type engine struct {
	users     *repository.UserRepository
	listings  *repository.ListingRepository
	sessions  *repository.SessionRepository
	session   *SessionService
	listing   *ListingService
	booking   *BookingService
	wishlist  *WishlistService
	dashboard *DashboardService
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	log := newTestLogger(t)
	durable := memory.New()

	e := &engine{
		users:    repository.NewUserRepo(durable, "mec"),
		listings: repository.NewListingRepo(durable, "mec"),
		sessions: repository.NewSessionRepo(memory.New(), "mec"),
	}
	e.session = NewSessionService(e.users, e.sessions, bcrypt.MinCost, log)
	e.listing = NewListingService(e.listings, e.users, log)
	e.booking = NewBookingService(e.users, e.listings, e.session, &recordingNotifier{}, log)
	e.wishlist = NewWishlistService(e.users, e.listings, e.session, log)
	e.dashboard = NewDashboardService(e.listing, e.wishlist, e.booking)
	return e
}

func (e *engine) signup(t *testing.T, name, email string, role domain.Role) *domain.User {
	t.Helper()
	u, err := e.session.Signup(context.Background(), domain.SignupInput{
		Name:     name,
		Email:    email,
		Password: "secret-" + name,
		Role:     string(role),
	})
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}
	return u
}
