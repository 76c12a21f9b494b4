package ports

import (
	"context"

	"github.com/stpnv0/CampusHaven/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingRequested(ctx context.Context, owner, student *domain.User, listing *domain.Listing)
}
