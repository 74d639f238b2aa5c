package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecentBookingWindow is how far back a booking's show date may lie for the
// booking to count as recent.
const RecentBookingWindow = 30 * 24 * time.Hour

type Booking struct {
	ID        int
	Reference uuid.UUID
	UserID    int
	Seats     []string
	CreatedAt time.Time
	Show      Show
	Theatre   Theatre
}

func (b Booking) Amount() decimal.Decimal {
	return b.Show.TicketPrice.Mul(decimal.NewFromInt(int64(len(b.Seats))))
}

// RecentBookings returns the bookings whose show date is after now minus
// RecentBookingWindow, preserving their order.
func RecentBookings(bookings []Booking, now time.Time) []Booking {
	cutoff := now.Add(-RecentBookingWindow)

	recent := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Show.Date.After(cutoff) {
			recent = append(recent, b)
		}
	}

	return recent
}

type BookingRepository interface {
	GetAllByUser(ctx context.Context, userID int) ([]Booking, error)
}
