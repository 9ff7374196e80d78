package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindconnect/mind-service/internal/domain"
)

// MotivationRepository defines persistence access for motivational content.
type MotivationRepository interface {
	Create(ctx context.Context, motivation *domain.Motivation) error
	Update(ctx context.Context, motivation *domain.Motivation) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Motivation, error)
	GetRandomActive(ctx context.Context) (*domain.Motivation, error)
	ListActive(ctx context.Context) ([]*domain.Motivation, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Motivation, error)
	ListByType(ctx context.Context, contentType domain.MotivationType) ([]*domain.Motivation, error)
	Count(ctx context.Context) (int64, error)
}

type motivationRepository struct {
	pool *pgxpool.Pool
}

// NewMotivationRepository returns a Postgres-backed implementation.
func NewMotivationRepository(pool *pgxpool.Pool) MotivationRepository {
	return &motivationRepository{pool: pool}
}

const motivationColumns = `
        id, title, content, type, author, category, active, created_at, updated_at`

func scanMotivation(row pgx.Row) (*domain.Motivation, error) {
	var m domain.Motivation
	if err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Content,
		&m.Type,
		&m.Author,
		&m.Category,
		&m.Active,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *motivationRepository) Create(ctx context.Context, motivation *domain.Motivation) error {
	const query = `
        INSERT INTO motivations (title, content, type, author, category, active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		motivation.Title,
		motivation.Content,
		motivation.Type,
		motivation.Author,
		motivation.Category,
		motivation.Active,
	).Scan(&motivation.ID, &motivation.CreatedAt, &motivation.UpdatedAt)
}

func (r *motivationRepository) Update(ctx context.Context, motivation *domain.Motivation) error {
	const query = `
        UPDATE motivations
        SET title=$1, content=$2, type=$3, author=$4, category=$5, active=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		motivation.Title,
		motivation.Content,
		motivation.Type,
		motivation.Author,
		motivation.Category,
		motivation.Active,
		motivation.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *motivationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM motivations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *motivationRepository) GetByID(ctx context.Context, id string) (*domain.Motivation, error) {
	const query = `SELECT` + motivationColumns + ` FROM motivations WHERE id=$1`
	return scanMotivation(r.pool.QueryRow(ctx, query, id))
}

func (r *motivationRepository) GetRandomActive(ctx context.Context) (*domain.Motivation, error) {
	const query = `SELECT` + motivationColumns + ` FROM motivations WHERE active ORDER BY random() LIMIT 1`
	return scanMotivation(r.pool.QueryRow(ctx, query))
}

func (r *motivationRepository) ListActive(ctx context.Context) ([]*domain.Motivation, error) {
	const query = `SELECT` + motivationColumns + ` FROM motivations WHERE active ORDER BY created_at DESC`
	return r.queryMotivations(ctx, query)
}

func (r *motivationRepository) ListByCategory(ctx context.Context, category string) ([]*domain.Motivation, error) {
	const query = `SELECT` + motivationColumns + ` FROM motivations WHERE active AND category=$1 ORDER BY created_at DESC`
	return r.queryMotivations(ctx, query, category)
}

func (r *motivationRepository) ListByType(ctx context.Context, contentType domain.MotivationType) ([]*domain.Motivation, error) {
	const query = `SELECT` + motivationColumns + ` FROM motivations WHERE active AND type=$1 ORDER BY created_at DESC`
	return r.queryMotivations(ctx, query, contentType)
}

func (r *motivationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM motivations`).Scan(&count)
	return count, err
}

func (r *motivationRepository) queryMotivations(ctx context.Context, query string, args ...any) ([]*domain.Motivation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var motivations []*domain.Motivation
	for rows.Next() {
		motivation, err := scanMotivation(rows)
		if err != nil {
			return nil, err
		}
		motivations = append(motivations, motivation)
	}
	return motivations, rows.Err()
}
