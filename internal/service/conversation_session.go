package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hearmeout/internal/domain"
	"hearmeout/internal/llm"
)

// SessionState es la etapa del turno en curso.
type SessionState string

const (
	StateIdle             SessionState = "idle"
	StateAnalyzing        SessionState = "analyzing"
	StateResponding       SessionState = "responding"
	StateCrisisResponding SessionState = "crisis_responding"
)

const hostedHistoryLines = 4

// ConversationSession procesa un turno a la vez; los turnos concurrentes esperan su vez.
// El historial es propiedad exclusiva de la sesion.
type ConversationSession struct {
	engine *SessionEngine

	turnMu    sync.Mutex
	mu        sync.RWMutex
	id        string
	createdAt time.Time
	locale    string
	history   []domain.Turn
	turnCount int
	state     SessionState
}

func (s *ConversationSession) ID() string {
	return s.id
}

func (s *ConversationSession) CreatedAt() time.Time {
	return s.createdAt
}

func (s *ConversationSession) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// SetLocale cambia el idioma activo; un idioma distinto vacia el historial.
func (s *ConversationSession) SetLocale(locale string) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return
	}
	s.turnMu.Lock()
	defer s.turnMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	if canonicalLocale(locale) != canonicalLocale(s.locale) {
		s.history = nil
	}
	s.locale = locale
}

func (s *ConversationSession) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// TurnCount cuenta todos los turnos procesados, no solo los que siguen en la ventana.
func (s *ConversationSession) TurnCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.turnCount
}

// History devuelve una copia de la ventana, del turno mas viejo al mas nuevo.
func (s *ConversationSession) History() []domain.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Turn{}, s.history...)
}

func (s *ConversationSession) Snapshot() domain.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SessionSnapshot{
		Session:   domain.Session{ID: s.id, Locale: s.locale, CreatedAt: s.createdAt},
		TurnCount: s.turnCount,
		History:   append([]domain.Turn{}, s.history...),
	}
}

func (s *ConversationSession) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// ProcessTurn clasifica y responde un enunciado. Solo devuelve error ante un enunciado vacio:
// cualquier falla interna se convierte en la disculpa localizada y el turno igual se registra.
func (s *ConversationSession) ProcessTurn(ctx context.Context, text string) (domain.Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Turn{}, ErrEmptyUtterance
	}

	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	s.mu.RLock()
	locale := s.locale
	history := append([]domain.Turn{}, s.history...)
	s.mu.RUnlock()

	turn := domain.Turn{
		ID:        uuid.NewString(),
		SessionID: s.id,
		UserText:  text,
		Locale:    locale,
		Timestamp: s.engine.now(),
	}

	s.setState(StateAnalyzing)
	if err := s.runPipeline(ctx, &turn, history); err != nil {
		s.engine.logger.Error("turn failed",
			zap.String("session_id", s.id),
			zap.String("turn_id", turn.ID),
			zap.Error(err),
		)
		turn.Failed = true
		turn.Classification = nil
		if turn.Crisis {
			turn.ResponseText = CrisisMessage(locale)
			turn.Source = domain.TurnSourceCrisis
		} else {
			turn.ResponseText = ApologyMessage(locale)
			turn.Source = domain.TurnSourceFallback
		}
	}

	s.mu.Lock()
	s.history = append(s.history, turn)
	if over := len(s.history) - s.engine.window; over > 0 {
		s.history = append([]domain.Turn(nil), s.history[over:]...)
	}
	s.turnCount++
	s.state = StateIdle
	s.mu.Unlock()

	return turn, nil
}

func (s *ConversationSession) runPipeline(ctx context.Context, turn *domain.Turn, history []domain.Turn) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrResponseGenerationFailed, r)
		}
	}()

	e := s.engine
	in := GenerateInput{Text: turn.UserText, History: history, Locale: turn.Locale}

	if e.crisis.IsCrisis(turn.UserText) {
		turn.Crisis = true
		s.setState(StateCrisisResponding)
		e.logger.Warn("crisis detected", zap.String("session_id", s.id))
		turn.Source = domain.TurnSourceCrisis
		turn.ResponseText = CrisisMessage(turn.Locale)
		cls := e.Classify(turn.UserText)
		turn.Classification = &cls
		return nil
	}

	if intent, ok := e.matchIntent(turn.UserText); ok {
		cls := quickIntentClassification()
		turn.Intent = intent
		turn.Classification = &cls
		turn.Source = domain.TurnSourceIntent
		in.Intent = intent
		in.Classification = cls
		s.setState(StateResponding)
		reply, err := e.generator.Generate(ctx, in)
		if err != nil {
			return err
		}
		turn.ResponseText = reply
		return nil
	}

	cls := e.Classify(turn.UserText)
	turn.Classification = &cls
	in.Classification = cls
	in.SmallTalk = e.isSmallTalk(turn.UserText)
	s.setState(StateResponding)

	if e.responder != nil {
		if reply, ok := s.respondHosted(ctx, turn, history); ok {
			turn.ResponseText = reply.Text
			turn.Source = domain.TurnSourceHosted
			if hosted, ok := classificationFromHosted(reply.Emotion); ok {
				turn.Classification = &hosted
			}
			return nil
		}
	}

	reply, err := e.generator.Generate(ctx, in)
	if err != nil {
		return err
	}
	turn.ResponseText = reply
	turn.Source = domain.TurnSourceLocal
	return nil
}

// respondHosted delega el paso de plantillas con timeout; ok=false vuelve al motor local.
func (s *ConversationSession) respondHosted(ctx context.Context, turn *domain.Turn, history []domain.Turn) (domain.HostedReply, bool) {
	e := s.engine
	hctx, cancel := context.WithTimeout(ctx, e.hostedTimeout)
	defer cancel()

	reply, err := e.responder.Respond(hctx, llm.HostedRequest{
		Text:                turn.UserText,
		Language:            turn.Locale,
		ConversationHistory: conversationLines(history, hostedHistoryLines),
	})
	if err == nil && strings.TrimSpace(reply.Text) == "" {
		err = llm.ErrEmptyReply
	}
	if err != nil {
		e.logger.Warn("hosted responder unavailable, using local templates",
			zap.String("session_id", s.id),
			zap.Error(fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)),
		)
		return domain.HostedReply{}, false
	}
	return reply, true
}

// conversationLines arma "User: ..." / "Assistant: ..." y conserva las ultimas max lineas.
func conversationLines(history []domain.Turn, max int) []string {
	lines := make([]string, 0, len(history)*2)
	for _, t := range history {
		lines = append(lines, "User: "+t.UserText)
		if t.ResponseText != "" {
			lines = append(lines, "Assistant: "+t.ResponseText)
		}
	}
	if max > 0 && len(lines) > max {
		lines = lines[len(lines)-max:]
	}
	return lines
}
