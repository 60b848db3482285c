package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"hearmeout/internal/domain"
)

// SessionManager registra las sesiones vivas y las respalda en el HistorySnapshotStore.
// Una sesion sin uso durante snapshotTTL sale de memoria.
type SessionManager struct {
	engine      *SessionEngine
	store       HistorySnapshotStore
	snapshotTTL time.Duration
	logger      *zap.Logger
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*managedSession
}

type managedSession struct {
	session  *ConversationSession
	lastUsed time.Time
}

// NewSessionManager acepta store nil: entonces las sesiones viven solo en memoria.
func NewSessionManager(engine *SessionEngine, store HistorySnapshotStore, snapshotTTL time.Duration, logger *zap.Logger) *SessionManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if snapshotTTL <= 0 {
		snapshotTTL = 24 * time.Hour
	}
	return &SessionManager{
		engine:      engine,
		store:       store,
		snapshotTTL: snapshotTTL,
		logger:      logger,
		now:         time.Now,
		sessions:    make(map[string]*managedSession),
	}
}

func (m *SessionManager) Create(locale string) *ConversationSession {
	s := m.engine.NewSession("", locale)
	m.mu.Lock()
	now := m.now()
	m.evictIdleLocked(now)
	m.sessions[s.ID()] = &managedSession{session: s, lastUsed: now}
	m.mu.Unlock()
	m.Save(s)
	return s
}

// Get busca en memoria y, si no esta, intenta restaurar desde el store.
func (m *SessionManager) Get(sessionID string) (*ConversationSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if entry, ok := m.sessions[sessionID]; ok {
		if !m.idle(entry, now) {
			entry.lastUsed = now
			return entry.session, nil
		}
		delete(m.sessions, sessionID)
	}
	if m.store == nil {
		return nil, ErrSessionNotFound
	}
	snap, ok, err := m.store.Load(sessionID)
	if err != nil {
		m.logger.Warn("snapshot load failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, ErrSessionNotFound
	}
	if !ok {
		return nil, ErrSessionNotFound
	}
	s := m.engine.RestoreSession(snap)
	m.sessions[sessionID] = &managedSession{session: s, lastUsed: now}
	return s, nil
}

// EvictIdle saca de memoria las sesiones sin uso; el snapshot queda en el store.
func (m *SessionManager) EvictIdle() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evictIdleLocked(m.now())
}

// RunEvictor barre las sesiones inactivas cada interval hasta que ctx termine.
func (m *SessionManager) RunEvictor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.EvictIdle()
		}
	}
}

func (m *SessionManager) evictIdleLocked(now time.Time) int {
	evicted := 0
	for id, entry := range m.sessions {
		if m.idle(entry, now) {
			delete(m.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		m.logger.Debug("idle sessions evicted", zap.Int("count", evicted), zap.Int("remaining", len(m.sessions)))
	}
	return evicted
}

func (m *SessionManager) idle(entry *managedSession, now time.Time) bool {
	return now.Sub(entry.lastUsed) > m.snapshotTTL
}

// Save persiste el snapshot; una falla del store se registra y no interrumpe la conversacion.
func (m *SessionManager) Save(s *ConversationSession) {
	if m.store == nil || s == nil {
		return
	}
	if err := m.store.Save(s.Snapshot(), m.snapshotTTL); err != nil {
		m.logger.Warn("snapshot save failed", zap.String("session_id", s.ID()), zap.Error(err))
	}
}

func (m *SessionManager) Delete(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	if m.store == nil {
		return
	}
	if err := m.store.Delete(sessionID); err != nil {
		m.logger.Warn("snapshot delete failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

// ProcessTurn resuelve la sesion, procesa el turno y guarda el snapshot.
// Un locale no vacio distinto del activo se aplica antes del turno.
func (m *SessionManager) ProcessTurn(ctx context.Context, sessionID, text, locale string) (domain.Turn, error) {
	s, err := m.Get(sessionID)
	if err != nil {
		return domain.Turn{}, err
	}
	if strings.TrimSpace(locale) != "" {
		s.SetLocale(locale)
	}
	turn, err := s.ProcessTurn(ctx, text)
	if err != nil {
		return domain.Turn{}, err
	}
	m.Save(s)
	return turn, nil
}
