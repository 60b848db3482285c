package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hearmeout/internal/domain"
)

var ErrNotFound = errors.New("not found")

type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	GetByID(ctx context.Context, id string) (domain.Session, error)
}

type PgSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSessionRepository(pool *pgxpool.Pool) *PgSessionRepository {
	return &PgSessionRepository{pool: pool}
}

func (r *PgSessionRepository) Create(ctx context.Context, session domain.Session) error {
	const query = `
		INSERT INTO sessions (id, locale, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`
	var expiresAt interface{}
	if !session.ExpiresAt.IsZero() {
		expiresAt = session.ExpiresAt
	}
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.Locale,
		expiresAt,
		session.CreatedAt,
	)
	return err
}

func (r *PgSessionRepository) GetByID(ctx context.Context, id string) (domain.Session, error) {
	const query = `
		SELECT id, locale, expires_at, created_at
		FROM sessions
		WHERE id = $1
	`
	var (
		session   domain.Session
		expiresAt *time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.Locale,
		&expiresAt,
		&session.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Session{}, ErrNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}
	if expiresAt != nil {
		session.ExpiresAt = *expiresAt
	}
	return session, nil
}
