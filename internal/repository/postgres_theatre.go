package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinex-admin/internal/domain"
)

type PostgresTheatreRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheatreRepository(db *pgxpool.Pool) *PostgresTheatreRepository {
	return &PostgresTheatreRepository{
		db: db,
	}
}

func (p *PostgresTheatreRepository) GetAll(ctx context.Context) ([]domain.Theatre, error) {
	query := `
		SELECT id, name, address, phone, email, is_active, created_at, version
		FROM theatres
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theatres := make([]domain.Theatre, 0)

	for rows.Next() {
		var theatre domain.Theatre

		err := rows.Scan(
			&theatre.ID,
			&theatre.Name,
			&theatre.Address,
			&theatre.Phone,
			&theatre.Email,
			&theatre.IsActive,
			&theatre.CreatedAt,
			&theatre.Version,
		)
		if err != nil {
			return nil, err
		}

		theatres = append(theatres, theatre)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theatres, nil
}

func (p *PostgresTheatreRepository) GetById(ctx context.Context, id int) (*domain.Theatre, error) {
	query := `
		SELECT id, name, address, phone, email, is_active, created_at, version
		FROM theatres
		WHERE id = $1`

	var theatre domain.Theatre

	err := p.db.QueryRow(ctx, query, id).Scan(
		&theatre.ID,
		&theatre.Name,
		&theatre.Address,
		&theatre.Phone,
		&theatre.Email,
		&theatre.IsActive,
		&theatre.CreatedAt,
		&theatre.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theatre, nil
}

func (p *PostgresTheatreRepository) Create(ctx context.Context, theatre *domain.Theatre) error {
	query := `
		INSERT INTO theatres (name, address, phone, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, version`

	return p.db.QueryRow(
		ctx,
		query,
		theatre.Name,
		theatre.Address,
		theatre.Phone,
		theatre.Email,
	).Scan(&theatre.ID, &theatre.IsActive, &theatre.CreatedAt, &theatre.Version)
}

// Update writes the theatre only if its version still matches the stored one
// and bumps the version on success.
func (p *PostgresTheatreRepository) Update(ctx context.Context, theatre *domain.Theatre) error {
	query := `
		UPDATE theatres
		SET name = $1, address = $2, phone = $3, email = $4, is_active = $5, version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version`

	err := p.db.QueryRow(
		ctx,
		query,
		theatre.Name,
		theatre.Address,
		theatre.Phone,
		theatre.Email,
		theatre.IsActive,
		theatre.ID,
		theatre.Version,
	).Scan(&theatre.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEditConflict
		}

		return err
	}

	return nil
}

func (p *PostgresTheatreRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM theatres WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrTheatreHasShows
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
