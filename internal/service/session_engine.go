package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hearmeout/internal/domain"
	"hearmeout/internal/lexicon"
	"hearmeout/internal/llm"
)

const (
	DefaultHistoryWindow = 5
	defaultHostedTimeout = 8 * time.Second
)

// EngineOptions ajusta el motor compartido por todas las sesiones.
type EngineOptions struct {
	TierPolicy    string
	QuickIntents  bool
	HistoryWindow int
	Randomizer    Randomizer
	Translator    llm.Translator
	// Responder nil deja solo el camino local.
	Responder     llm.Responder
	HostedTimeout time.Duration
}

// SessionEngine contiene los componentes de solo lectura que comparten las sesiones.
type SessionEngine struct {
	classifier    EmotionScorer
	topics        TopicScanner
	crisis        CrisisScanner
	intents       IntentRecognizer
	smallTalk     *IntentMatcher
	generator     ReplyGenerator
	responder     llm.Responder
	hostedTimeout time.Duration
	window        int
	logger        *zap.Logger
	now           func() time.Time
}

func NewSessionEngine(store *lexicon.Store, opts EngineOptions, logger *zap.Logger) *SessionEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.HistoryWindow < 1 {
		opts.HistoryWindow = DefaultHistoryWindow
	}
	if opts.HostedTimeout <= 0 {
		opts.HostedTimeout = defaultHostedTimeout
	}
	e := &SessionEngine{
		classifier:    NewEmotionClassifier(store, opts.TierPolicy),
		topics:        NewTopicExtractor(store),
		crisis:        NewCrisisDetector(store),
		smallTalk:     NewIntentMatcher(store),
		generator:     NewResponseGenerator(opts.Randomizer, opts.Translator, logger),
		responder:     opts.Responder,
		hostedTimeout: opts.HostedTimeout,
		window:        opts.HistoryWindow,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
	if opts.QuickIntents {
		e.intents = NewIntentMatcher(store)
	}
	return e
}

// HistoryWindow es el tamaño del buffer de historial de cada sesion.
func (e *SessionEngine) HistoryWindow() int {
	return e.window
}

// NewSession crea una sesion vacia; id vacio genera uno nuevo.
func (e *SessionEngine) NewSession(id, locale string) *ConversationSession {
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	return &ConversationSession{
		engine:    e,
		id:        id,
		createdAt: e.now(),
		locale:    strings.TrimSpace(locale),
		state:     StateIdle,
	}
}

// RestoreSession reconstruye una sesion desde un snapshot, recortando al tamaño de ventana.
func (e *SessionEngine) RestoreSession(snap domain.SessionSnapshot) *ConversationSession {
	s := e.NewSession(snap.Session.ID, snap.Session.Locale)
	history := snap.History
	if len(history) > e.window {
		history = history[len(history)-e.window:]
	}
	s.history = append([]domain.Turn(nil), history...)
	s.turnCount = snap.TurnCount
	if !snap.Session.CreatedAt.IsZero() {
		s.createdAt = snap.Session.CreatedAt
	}
	return s
}

// Classify combina emocion y temas del mismo texto sin que se influyan.
func (e *SessionEngine) Classify(text string) domain.Classification {
	return domain.Classification{
		EmotionResult: e.classifier.Classify(text),
		Topics:        e.topics.ExtractTopics(text),
	}
}

// IsCrisis expone el detector para capas externas.
func (e *SessionEngine) IsCrisis(text string) bool {
	return e.crisis.IsCrisis(text)
}

// Analyze resuelve un enunciado sin sesion: crisis, luego intencion, luego emocion.
// Es lo que atiende el contrato generate-response.
func (e *SessionEngine) Analyze(ctx context.Context, text, locale string, conversationHistory []string) (out domain.HostedReply, err error) {
	if strings.TrimSpace(text) == "" {
		return domain.HostedReply{}, ErrEmptyUtterance
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("stateless analysis panicked", zap.Any("panic", r))
			out = domain.HostedReply{Text: ApologyMessage(locale), Language: locale}
			err = nil
		}
	}()
	history := make([]domain.Turn, 0, len(conversationHistory))
	for _, line := range conversationHistory {
		if strings.TrimSpace(line) != "" {
			history = append(history, domain.Turn{UserText: line})
		}
	}

	in := GenerateInput{Text: text, History: history, Locale: locale}
	if e.crisis.IsCrisis(text) {
		in.Crisis = true
		in.Classification = e.Classify(text)
	} else if intent, ok := e.matchIntent(text); ok {
		in.Intent = intent
		in.Classification = quickIntentClassification()
	} else {
		in.Classification = e.Classify(text)
		in.SmallTalk = e.isSmallTalk(text)
	}

	reply, genErr := e.generator.Generate(ctx, in)
	if genErr != nil {
		e.logger.Error("stateless generation failed", zap.Error(genErr))
		reply = ApologyMessage(locale)
	}
	return domain.HostedReply{
		Text:     reply,
		Emotion:  hostedEmotion(in.Classification),
		Language: locale,
	}, nil
}

// matchIntent solo acepta la intencion si el enunciado no trae carga emocional:
// "hey I feel so depressed" va al analisis completo.
func (e *SessionEngine) matchIntent(text string) (domain.Intent, bool) {
	if e.intents == nil {
		return "", false
	}
	intent, ok := e.intents.MatchIntent(text)
	if !ok || e.carriesEmotion(text) {
		return "", false
	}
	return intent, true
}

// isSmallTalk no depende de QuickIntents; el generador lo usa para no tratar
// un saludo como continuacion.
func (e *SessionEngine) isSmallTalk(text string) bool {
	if _, ok := e.smallTalk.MatchIntent(text); !ok {
		return false
	}
	return !e.carriesEmotion(text)
}

// carriesEmotion evalua lo que queda tras quitar las frases de cortesia,
// asi "good morning" sigue siendo un saludo.
func (e *SessionEngine) carriesEmotion(text string) bool {
	signaler, ok := e.classifier.(EmotionSignaler)
	if !ok {
		return false
	}
	return signaler.HasSignal(e.smallTalk.Residual(text))
}

// Los turnos de intencion rapida se registran como happiness/low con confianza alta.
func quickIntentClassification() domain.Classification {
	return domain.Classification{
		EmotionResult: domain.EmotionResult{
			Emotion:    domain.EmotionHappiness,
			Intensity:  domain.IntensityLow,
			Confidence: 0.9,
		},
		Topics: []domain.Topic{},
	}
}

func hostedEmotion(c domain.Classification) domain.HostedEmotion {
	topics := make([]string, 0, len(c.Topics))
	for _, t := range c.Topics {
		topics = append(topics, string(t))
	}
	return domain.HostedEmotion{
		Type:       string(c.Emotion),
		Intensity:  string(c.Intensity),
		Confidence: c.Confidence,
		Topics:     topics,
	}
}

// classificationFromHosted acepta la clasificacion alojada solo si es valida.
func classificationFromHosted(h domain.HostedEmotion) (domain.Classification, bool) {
	emotion, ok := domain.ParseEmotion(h.Type)
	if !ok {
		return domain.Classification{}, false
	}
	intensity, ok := domain.ParseIntensity(h.Intensity)
	if !ok {
		intensity = domain.IntensityMedium
	}
	confidence := h.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	topics := make([]domain.Topic, 0, len(h.Topics))
	for _, t := range h.Topics {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			topics = append(topics, domain.Topic(t))
		}
	}
	return domain.Classification{
		EmotionResult: domain.EmotionResult{Emotion: emotion, Intensity: intensity, Confidence: confidence},
		Topics:        topics,
	}, true
}
