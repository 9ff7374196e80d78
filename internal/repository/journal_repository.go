package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindconnect/mind-service/internal/domain"
)

// JournalRepository defines persistence access for journal entries.
type JournalRepository interface {
	Create(ctx context.Context, journal *domain.Journal) error
	Update(ctx context.Context, journal *domain.Journal) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Journal, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Journal, error)
}

type journalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository returns a Postgres-backed implementation.
func NewJournalRepository(pool *pgxpool.Pool) JournalRepository {
	return &journalRepository{pool: pool}
}

func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var j domain.Journal
	if err := row.Scan(
		&j.ID,
		&j.UserID,
		&j.Title,
		&j.Content,
		&j.Mood,
		&j.Tags,
		&j.CreatedAt,
		&j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *journalRepository) Create(ctx context.Context, journal *domain.Journal) error {
	const query = `
        INSERT INTO journals (user_id, title, content, mood, tags)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		journal.UserID,
		journal.Title,
		journal.Content,
		journal.Mood,
		journal.Tags,
	).Scan(&journal.ID, &journal.CreatedAt, &journal.UpdatedAt)
}

func (r *journalRepository) Update(ctx context.Context, journal *domain.Journal) error {
	const query = `
        UPDATE journals SET title=$1, content=$2, mood=$3, tags=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		journal.Title,
		journal.Content,
		journal.Mood,
		journal.Tags,
		journal.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *journalRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM journals WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *journalRepository) GetByID(ctx context.Context, id string) (*domain.Journal, error) {
	const query = `
        SELECT id, user_id, title, content, mood, tags, created_at, updated_at
        FROM journals WHERE id=$1`
	return scanJournal(r.pool.QueryRow(ctx, query, id))
}

func (r *journalRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Journal, error) {
	const query = `
        SELECT id, user_id, title, content, mood, tags, created_at, updated_at
        FROM journals WHERE user_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var journals []*domain.Journal
	for rows.Next() {
		journal, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		journals = append(journals, journal)
	}
	return journals, rows.Err()
}
