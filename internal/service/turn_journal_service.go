package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hearmeout/internal/domain"
	"hearmeout/internal/repository"
)

// TurnJournalService persiste sesiones y turnos fuera del nucleo. Sin repositorios es un no-op.
type TurnJournalService struct {
	sessions repository.SessionRepository
	turns    repository.TurnRepository
}

var ErrJournalInvalidInput = errors.New("journal invalid input")

func NewTurnJournalService(sessions repository.SessionRepository, turns repository.TurnRepository) *TurnJournalService {
	return &TurnJournalService{sessions: sessions, turns: turns}
}

func (s *TurnJournalService) Enabled() bool {
	return s != nil && s.sessions != nil && s.turns != nil
}

func (s *TurnJournalService) OpenSession(ctx context.Context, session domain.Session) error {
	if !s.Enabled() {
		return nil
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return ErrJournalInvalidInput
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	return s.sessions.Create(ctx, session)
}

func (s *TurnJournalService) Record(ctx context.Context, turn domain.Turn) error {
	if !s.Enabled() {
		return nil
	}

	turn.SessionID = strings.TrimSpace(turn.SessionID)
	turn.UserText = strings.TrimSpace(turn.UserText)
	turn.ResponseText = strings.TrimSpace(turn.ResponseText)
	turn.Locale = strings.TrimSpace(turn.Locale)

	if turn.SessionID == "" || turn.UserText == "" || turn.ResponseText == "" {
		return ErrJournalInvalidInput
	}
	if turn.ID == "" {
		turn.ID = uuid.NewString()
	}
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now().UTC()
	}
	if turn.Source == "" {
		turn.Source = domain.TurnSourceLocal
	}

	return s.turns.Create(ctx, turn)
}

func (s *TurnJournalService) ListBySession(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	if !s.Enabled() {
		return []domain.Turn{}, nil
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return []domain.Turn{}, nil
	}
	return s.turns.ListBySessionID(ctx, sessionID)
}
