package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinex-admin/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) GetAllByUser(ctx context.Context, userID int) ([]domain.Booking, error) {
	query := `
		SELECT
			b.id,
			b.reference,
			b.user_id,
			b.created_at,
			s.id,
			s.name,
			s.show_date,
			to_char(s.show_time, 'HH24:MI'),
			s.ticket_price,
			s.total_seats,
			m.id,
			m.title,
			m.language,
			m.poster_url,
			t.id,
			t.name,
			t.address,
			COALESCE(array_agg(bs.seat ORDER BY bs.seat) FILTER (WHERE bs.seat IS NOT NULL), '{}')
		FROM bookings b
		JOIN shows s ON s.id = b.show_id
		JOIN theatres t ON t.id = s.theatre_id
		LEFT JOIN movies m ON m.id = s.movie_id
		LEFT JOIN booking_seats bs ON bs.booking_id = b.id
		WHERE b.user_id = $1
		GROUP BY b.id, s.id, m.id, t.id
		ORDER BY s.show_date DESC, s.show_time DESC, b.id DESC`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)

	for rows.Next() {
		var (
			booking        domain.Booking
			price          pgtype.Numeric
			movieID        *int
			movieTitle     *string
			movieLanguage  *string
			moviePosterUrl *string
		)

		err := rows.Scan(
			&booking.ID,
			&booking.Reference,
			&booking.UserID,
			&booking.CreatedAt,
			&booking.Show.ID,
			&booking.Show.Name,
			&booking.Show.Date,
			&booking.Show.Time,
			&price,
			&booking.Show.TotalSeats,
			&movieID,
			&movieTitle,
			&movieLanguage,
			&moviePosterUrl,
			&booking.Theatre.ID,
			&booking.Theatre.Name,
			&booking.Theatre.Address,
			&booking.Seats,
		)
		if err != nil {
			return nil, err
		}

		booking.Show.TicketPrice, err = numericToDecimal(price)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", booking.ID, err)
		}

		booking.Show.TheatreID = booking.Theatre.ID

		if movieID != nil {
			booking.Show.Movie = &domain.Movie{
				ID:        *movieID,
				Title:     *movieTitle,
				Language:  *movieLanguage,
				PosterUrl: *moviePosterUrl,
			}
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
