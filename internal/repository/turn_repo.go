package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hearmeout/internal/domain"
)

type TurnRepository interface {
	Create(ctx context.Context, turn domain.Turn) error
	ListBySessionID(ctx context.Context, sessionID string) ([]domain.Turn, error)
}

type PgTurnRepository struct {
	pool *pgxpool.Pool
}

func NewPgTurnRepository(pool *pgxpool.Pool) *PgTurnRepository {
	return &PgTurnRepository{pool: pool}
}

func (r *PgTurnRepository) Create(ctx context.Context, turn domain.Turn) error {
	const query = `
		INSERT INTO turns (id, session_id, user_text, emotion, intensity, confidence, topics,
			intent, crisis, failed, response_text, locale, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	// Un turno fallido no tiene clasificacion: esas columnas quedan en NULL.
	var emotion, intensity, confidence, topics interface{}
	if c := turn.Classification; c != nil {
		emotion = string(c.Emotion)
		intensity = string(c.Intensity)
		confidence = c.Confidence
		tags := make([]string, 0, len(c.Topics))
		for _, t := range c.Topics {
			tags = append(tags, string(t))
		}
		topics = tags
	}

	_, err := r.pool.Exec(ctx, query,
		turn.ID,
		turn.SessionID,
		turn.UserText,
		emotion,
		intensity,
		confidence,
		topics,
		string(turn.Intent),
		turn.Crisis,
		turn.Failed,
		turn.ResponseText,
		turn.Locale,
		turn.Source,
		turn.Timestamp,
	)
	return err
}

func (r *PgTurnRepository) ListBySessionID(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	const query = `
		SELECT id, session_id, user_text, emotion, intensity, confidence, topics,
			intent, crisis, failed, response_text, locale, source, created_at
		FROM turns
		WHERE session_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []domain.Turn
	for rows.Next() {
		var (
			turn       domain.Turn
			emotion    *string
			intensity  *string
			confidence *float64
			topics     []string
			intent     string
		)
		err = rows.Scan(
			&turn.ID,
			&turn.SessionID,
			&turn.UserText,
			&emotion,
			&intensity,
			&confidence,
			&topics,
			&intent,
			&turn.Crisis,
			&turn.Failed,
			&turn.ResponseText,
			&turn.Locale,
			&turn.Source,
			&turn.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		turn.Intent = domain.Intent(intent)
		if emotion != nil {
			c := domain.Classification{
				EmotionResult: domain.EmotionResult{Emotion: domain.Emotion(*emotion)},
				Topics:        make([]domain.Topic, 0, len(topics)),
			}
			if intensity != nil {
				c.Intensity = domain.Intensity(*intensity)
			}
			if confidence != nil {
				c.Confidence = *confidence
			}
			for _, t := range topics {
				c.Topics = append(c.Topics, domain.Topic(t))
			}
			turn.Classification = &c
		}
		turns = append(turns, turn)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return turns, nil
}
