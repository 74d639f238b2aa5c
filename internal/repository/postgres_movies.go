package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinex-admin/internal/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, title, description, language, genre, location, poster_url, release_date, duration
		FROM movies
		WHERE ($1 = '' OR lower(location) = lower($1))
			AND ($2 = '' OR title ILIKE '%%' || $2 || '%%' ESCAPE '\')
		ORDER BY %s %s, id ASC
		LIMIT $3 OFFSET $4`, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(
		ctx,
		query,
		filters.LocationFilter(),
		likeEscaper.Replace(strings.TrimSpace(filters.Term)),
		filters.Limit(),
		filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Language,
			&movie.Genre,
			&movie.Location,
			&movie.PosterUrl,
			&movie.ReleaseDate,
			&movie.Duration,
		)

		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}
