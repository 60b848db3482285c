package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hearmeout/internal/domain"
)

type mockSessionRepo struct {
	lastCreated domain.Session
	createErr   error
}

func (m *mockSessionRepo) Create(_ context.Context, session domain.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.lastCreated = session
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id string) (domain.Session, error) {
	return m.lastCreated, nil
}

type mockTurnRepo struct {
	lastCreated domain.Turn
	createErr   error
	listData    []domain.Turn
	listErr     error
	lastSession string
}

func (m *mockTurnRepo) Create(_ context.Context, turn domain.Turn) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.lastCreated = turn
	return nil
}

func (m *mockTurnRepo) ListBySessionID(_ context.Context, sessionID string) ([]domain.Turn, error) {
	m.lastSession = sessionID
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listData, nil
}

func TestTurnJournalService_Disabled(t *testing.T) {
	svc := NewTurnJournalService(nil, nil)
	if svc.Enabled() {
		t.Fatalf("expected journal disabled without repositories")
	}
	if err := svc.Record(context.Background(), domain.Turn{}); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if err := svc.OpenSession(context.Background(), domain.Session{}); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	turns, err := svc.ListBySession(context.Background(), "s1")
	if err != nil || turns == nil || len(turns) != 0 {
		t.Fatalf("expected empty list, got %v,%v", turns, err)
	}
}

func TestTurnJournalService_RecordNormalizesAndDefaults(t *testing.T) {
	turns := &mockTurnRepo{}
	svc := NewTurnJournalService(&mockSessionRepo{}, turns)

	err := svc.Record(context.Background(), domain.Turn{
		SessionID:    " s1 ",
		UserText:     " hola ",
		ResponseText: " respuesta ",
		Locale:       " es-ES ",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := turns.lastCreated
	if got.ID == "" || got.Timestamp.IsZero() {
		t.Fatalf("expected generated id and timestamp, got %+v", got)
	}
	if got.SessionID != "s1" || got.UserText != "hola" || got.ResponseText != "respuesta" || got.Locale != "es-ES" {
		t.Fatalf("expected trimmed fields, got %+v", got)
	}
	if got.Source != domain.TurnSourceLocal {
		t.Fatalf("expected default source, got %q", got.Source)
	}
}

func TestTurnJournalService_RecordValidation(t *testing.T) {
	svc := NewTurnJournalService(&mockSessionRepo{}, &mockTurnRepo{})
	cases := []domain.Turn{
		{UserText: "hola", ResponseText: "r"},
		{SessionID: "s1", ResponseText: "r"},
		{SessionID: "s1", UserText: "hola"},
	}
	for i, c := range cases {
		if err := svc.Record(context.Background(), c); !errors.Is(err, ErrJournalInvalidInput) {
			t.Fatalf("case %d expected ErrJournalInvalidInput, got %v", i, err)
		}
	}
}

func TestTurnJournalService_PreservesExplicitFields(t *testing.T) {
	turns := &mockTurnRepo{}
	svc := NewTurnJournalService(&mockSessionRepo{}, turns)
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	err := svc.Record(context.Background(), domain.Turn{
		ID: "t1", SessionID: "s1", UserText: "hola", ResponseText: "r",
		Source: domain.TurnSourceCrisis, Crisis: true, Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if turns.lastCreated.ID != "t1" || !turns.lastCreated.Timestamp.Equal(ts) || turns.lastCreated.Source != domain.TurnSourceCrisis {
		t.Fatalf("expected explicit fields kept, got %+v", turns.lastCreated)
	}
}

func TestTurnJournalService_OpenSessionAndList(t *testing.T) {
	sessions := &mockSessionRepo{}
	turns := &mockTurnRepo{listData: []domain.Turn{{ID: "t1"}}}
	svc := NewTurnJournalService(sessions, turns)

	if err := svc.OpenSession(context.Background(), domain.Session{ID: " "}); !errors.Is(err, ErrJournalInvalidInput) {
		t.Fatalf("expected ErrJournalInvalidInput, got %v", err)
	}
	if err := svc.OpenSession(context.Background(), domain.Session{ID: " s1 ", Locale: "en-US"}); err != nil {
		t.Fatalf("open session: %v", err)
	}
	if sessions.lastCreated.ID != "s1" || sessions.lastCreated.CreatedAt.IsZero() {
		t.Fatalf("expected trimmed id and default created_at, got %+v", sessions.lastCreated)
	}

	list, err := svc.ListBySession(context.Background(), " s1 ")
	if err != nil || len(list) != 1 || turns.lastSession != "s1" {
		t.Fatalf("unexpected list %v,%v session=%q", list, err, turns.lastSession)
	}

	turns.listErr = errors.New("db down")
	if _, err := svc.ListBySession(context.Background(), "s1"); err == nil {
		t.Fatalf("expected repository error")
	}
	sessions.createErr = errors.New("db down")
	if err := svc.OpenSession(context.Background(), domain.Session{ID: "s2"}); err == nil {
		t.Fatalf("expected repository error")
	}
}
