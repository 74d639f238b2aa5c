package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinex-admin/internal/domain"
)

const (
	showsMovieFK   = "shows_movie_id_fkey"
	showsTheatreFK = "shows_theatre_id_fkey"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

// GetAllByTheatre returns the shows of a theatre ordered by schedule. A show
// whose movie was deleted comes back with a nil Movie.
func (p *PostgresShowRepository) GetAllByTheatre(ctx context.Context, theatreID int) ([]domain.Show, error) {
	query := `
		SELECT
			s.id,
			s.name,
			s.theatre_id,
			s.show_date,
			to_char(s.show_time, 'HH24:MI'),
			s.ticket_price,
			s.total_seats,
			m.id,
			m.title,
			COALESCE(array_agg(bs.seat ORDER BY bs.seat) FILTER (WHERE bs.seat IS NOT NULL), '{}')
		FROM shows s
		LEFT JOIN movies m ON m.id = s.movie_id
		LEFT JOIN bookings b ON b.show_id = s.id
		LEFT JOIN booking_seats bs ON bs.booking_id = b.id
		WHERE s.theatre_id = $1
		GROUP BY s.id, m.id
		ORDER BY s.show_date, s.show_time, s.id`

	rows, err := p.db.Query(ctx, query, theatreID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.Show, 0)

	for rows.Next() {
		var (
			show       domain.Show
			price      pgtype.Numeric
			movieID    *int
			movieTitle *string
		)

		err := rows.Scan(
			&show.ID,
			&show.Name,
			&show.TheatreID,
			&show.Date,
			&show.Time,
			&price,
			&show.TotalSeats,
			&movieID,
			&movieTitle,
			&show.BookedSeats,
		)
		if err != nil {
			return nil, err
		}

		show.TicketPrice, err = numericToDecimal(price)
		if err != nil {
			return nil, fmt.Errorf("show %d: %w", show.ID, err)
		}

		if movieID != nil {
			show.Movie = &domain.Movie{ID: *movieID, Title: *movieTitle}
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `
		WITH inserted AS (
			INSERT INTO shows (name, theatre_id, movie_id, show_date, show_time, ticket_price, total_seats)
			VALUES ($1, $2, $3, $4, $5::time, $6::numeric, $7)
			RETURNING id, movie_id
		)
		SELECT i.id, m.title
		FROM inserted i
		JOIN movies m ON m.id = i.movie_id`

	var movieTitle string

	err := p.db.QueryRow(
		ctx,
		query,
		show.Name,
		show.TheatreID,
		show.Movie.ID,
		show.Date,
		show.Time,
		show.TicketPrice.String(),
		show.TotalSeats,
	).Scan(&show.ID, &movieTitle)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			switch pgErr.ConstraintName {
			case showsMovieFK:
				return domain.ErrMovieNotFound
			case showsTheatreFK:
				return domain.ErrRecordNotFound
			}
		}

		return err
	}

	show.Movie.Title = movieTitle
	show.BookedSeats = []string{}

	return nil
}

// Delete removes a show that has no booked seats, along with any seatless
// bookings recorded against it. A show with booked seats is left in place and
// ErrShowHasBookings is returned.
func (p *PostgresShowRepository) Delete(ctx context.Context, id int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var showID int

		err := tx.QueryRow(ctx, `SELECT id FROM shows WHERE id = $1 FOR UPDATE`, id).Scan(&showID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		var hasBookedSeats bool

		query := `
			SELECT EXISTS (
				SELECT 1
				FROM bookings b
				JOIN booking_seats bs ON bs.booking_id = b.id
				WHERE b.show_id = $1
			)`

		err = tx.QueryRow(ctx, query, id).Scan(&hasBookedSeats)
		if err != nil {
			return err
		}

		if hasBookedSeats {
			return domain.ErrShowHasBookings
		}

		_, err = tx.Exec(ctx, `DELETE FROM bookings WHERE show_id = $1`, id)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM shows WHERE id = $1`, id)
		return err
	})
}
