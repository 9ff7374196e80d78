package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindconnect/mind-service/internal/domain"
)

// SessionRepository defines persistence access for therapy sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Session, error)
	ListByTherapist(ctx context.Context, therapistID string) ([]*domain.Session, error)
}

type sessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns a Postgres-backed implementation.
func NewSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepository{pool: pool}
}

const sessionColumns = `
        id, user_id, therapist_id, session_date, status, notes,
        session_type, duration_min, created_at, updated_at`

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.TherapistID,
		&s.SessionDate,
		&s.Status,
		&s.Notes,
		&s.SessionType,
		&s.DurationMin,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	const query = `
        INSERT INTO sessions (user_id, therapist_id, session_date, status, notes, session_type, duration_min)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		session.UserID,
		session.TherapistID,
		session.SessionDate,
		session.Status,
		session.Notes,
		session.SessionType,
		session.DurationMin,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
}

func (r *sessionRepository) Update(ctx context.Context, session *domain.Session) error {
	const query = `
        UPDATE sessions
        SET session_date=$1, status=$2, notes=$3, session_type=$4, duration_min=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		session.SessionDate,
		session.Status,
		session.Notes,
		session.SessionType,
		session.DurationMin,
		session.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	const query = `SELECT` + sessionColumns + ` FROM sessions WHERE id=$1`
	return scanSession(r.pool.QueryRow(ctx, query, id))
}

func (r *sessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	const query = `SELECT` + sessionColumns + ` FROM sessions ORDER BY session_date`
	return r.querySessions(ctx, query)
}

func (r *sessionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	const query = `SELECT` + sessionColumns + ` FROM sessions WHERE user_id=$1 ORDER BY session_date`
	return r.querySessions(ctx, query, userID)
}

func (r *sessionRepository) ListByTherapist(ctx context.Context, therapistID string) ([]*domain.Session, error) {
	const query = `SELECT` + sessionColumns + ` FROM sessions WHERE therapist_id=$1 ORDER BY session_date`
	return r.querySessions(ctx, query, therapistID)
}

func (r *sessionRepository) querySessions(ctx context.Context, query string, args ...any) ([]*domain.Session, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}
