package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking lives inside the User that requested it and has no id of its own.
type Booking struct {
	ListingID string        `json:"listing_id"`
	Status    BookingStatus `json:"status"`
	Date      time.Time     `json:"date"`
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// BookedListing is a booking joined with the listing it refers to.
type BookedListing struct {
	Listing Listing       `json:"listing"`
	Status  BookingStatus `json:"status"`
	Date    time.Time     `json:"date"`
}
