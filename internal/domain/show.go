package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Show is a single screening of a movie in a theatre. Movie is nil when the
// screened movie could not be resolved.
type Show struct {
	ID          int
	Name        string
	TheatreID   int
	Movie       *Movie
	Date        time.Time
	Time        string
	TicketPrice decimal.Decimal
	TotalSeats  int
	BookedSeats []string
}

func (s Show) TicketsSold() int {
	return len(s.BookedSeats)
}

func (s Show) Revenue() decimal.Decimal {
	return s.TicketPrice.Mul(decimal.NewFromInt(int64(s.TicketsSold())))
}

func (s Show) AvailableSeats() int {
	return s.TotalSeats - s.TicketsSold()
}

// Deletable reports whether the show can be removed without cancelling bookings.
func (s Show) Deletable() bool {
	return s.TicketsSold() == 0
}

type ShowRepository interface {
	GetAllByTheatre(ctx context.Context, theatreID int) ([]Show, error)
	Create(ctx context.Context, show *Show) error
	Delete(ctx context.Context, id int) error
}
