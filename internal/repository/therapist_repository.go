package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindconnect/mind-service/internal/domain"
)

// TherapistRepository defines persistence access for therapist accounts.
type TherapistRepository interface {
	Create(ctx context.Context, therapist *domain.Therapist) error
	Update(ctx context.Context, therapist *domain.Therapist) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Therapist, error)
	GetByEmail(ctx context.Context, email string) (*domain.Therapist, error)
	List(ctx context.Context) ([]*domain.Therapist, error)
	ListAvailable(ctx context.Context) ([]*domain.Therapist, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]*domain.Therapist, error)
}

type therapistRepository struct {
	pool *pgxpool.Pool
}

// NewTherapistRepository returns a Postgres-backed implementation.
func NewTherapistRepository(pool *pgxpool.Pool) TherapistRepository {
	return &therapistRepository{pool: pool}
}

const therapistColumns = `
        id, first_name, last_name, email, password_hash, specialization,
        qualification, experience, phone, bio, rating, available,
        created_at, updated_at`

func scanTherapist(row pgx.Row) (*domain.Therapist, error) {
	var t domain.Therapist
	if err := row.Scan(
		&t.ID,
		&t.FirstName,
		&t.LastName,
		&t.Email,
		&t.PasswordHash,
		&t.Specialization,
		&t.Qualification,
		&t.Experience,
		&t.Phone,
		&t.Bio,
		&t.Rating,
		&t.Available,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *therapistRepository) Create(ctx context.Context, therapist *domain.Therapist) error {
	const query = `
        INSERT INTO therapists (first_name, last_name, email, password_hash, specialization,
                                qualification, experience, phone, bio, rating, available)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		therapist.FirstName,
		therapist.LastName,
		therapist.Email,
		therapist.PasswordHash,
		therapist.Specialization,
		therapist.Qualification,
		therapist.Experience,
		therapist.Phone,
		therapist.Bio,
		therapist.Rating,
		therapist.Available,
	).Scan(&therapist.ID, &therapist.CreatedAt, &therapist.UpdatedAt)
}

func (r *therapistRepository) Update(ctx context.Context, therapist *domain.Therapist) error {
	const query = `
        UPDATE therapists
        SET first_name=$1, last_name=$2, password_hash=$3, specialization=$4,
            qualification=$5, experience=$6, phone=$7, bio=$8, rating=$9,
            available=$10, updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		therapist.FirstName,
		therapist.LastName,
		therapist.PasswordHash,
		therapist.Specialization,
		therapist.Qualification,
		therapist.Experience,
		therapist.Phone,
		therapist.Bio,
		therapist.Rating,
		therapist.Available,
		therapist.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *therapistRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM therapists WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *therapistRepository) GetByID(ctx context.Context, id string) (*domain.Therapist, error) {
	const query = `SELECT` + therapistColumns + ` FROM therapists WHERE id=$1`
	return scanTherapist(r.pool.QueryRow(ctx, query, id))
}

func (r *therapistRepository) GetByEmail(ctx context.Context, email string) (*domain.Therapist, error) {
	const query = `SELECT` + therapistColumns + ` FROM therapists WHERE email=$1`
	return scanTherapist(r.pool.QueryRow(ctx, query, email))
}

func (r *therapistRepository) List(ctx context.Context) ([]*domain.Therapist, error) {
	const query = `SELECT` + therapistColumns + ` FROM therapists ORDER BY last_name, first_name`
	return r.queryTherapists(ctx, query)
}

func (r *therapistRepository) ListAvailable(ctx context.Context) ([]*domain.Therapist, error) {
	const query = `SELECT` + therapistColumns + ` FROM therapists WHERE available ORDER BY rating DESC`
	return r.queryTherapists(ctx, query)
}

func (r *therapistRepository) ListBySpecialization(ctx context.Context, specialization string) ([]*domain.Therapist, error) {
	const query = `SELECT` + therapistColumns + ` FROM therapists WHERE specialization=$1 ORDER BY rating DESC`
	return r.queryTherapists(ctx, query, specialization)
}

func (r *therapistRepository) queryTherapists(ctx context.Context, query string, args ...any) ([]*domain.Therapist, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var therapists []*domain.Therapist
	for rows.Next() {
		therapist, err := scanTherapist(rows)
		if err != nil {
			return nil, err
		}
		therapists = append(therapists, therapist)
	}
	return therapists, rows.Err()
}
