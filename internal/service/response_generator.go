package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hearmeout/internal/domain"
	"hearmeout/internal/llm"
)

// GenerateInput reune todo lo que el generador necesita para un turno.
type GenerateInput struct {
	Text           string
	Classification domain.Classification
	History        []domain.Turn
	Crisis         bool
	Intent         domain.Intent
	Locale         string
	// SmallTalk marca saludos y cortesias aunque no hayan tomado el camino rapido.
	SmallTalk bool
}

// ReplyGenerator produce el texto de respuesta de un turno.
type ReplyGenerator interface {
	Generate(ctx context.Context, in GenerateInput) (string, error)
}

// ResponseGenerator elige plantillas segun crisis, intencion, continuidad, emocion y tema.
type ResponseGenerator struct {
	rnd        Randomizer
	translator llm.Translator
	logger     *zap.Logger
}

// NewResponseGenerator acepta translator nil: entonces las respuestas sin traduccion salen en ingles.
func NewResponseGenerator(rnd Randomizer, translator llm.Translator, logger *zap.Logger) *ResponseGenerator {
	if rnd == nil {
		rnd = NewRandomizer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponseGenerator{rnd: rnd, translator: translator, logger: logger}
}

func (g *ResponseGenerator) Generate(ctx context.Context, in GenerateInput) (string, error) {
	if in.Crisis {
		return CrisisMessage(in.Locale), nil
	}
	if in.Intent != "" {
		return g.intentReply(ctx, in.Intent, in.Locale)
	}

	reply, err := g.emotionReply(in.Classification)
	if err != nil {
		return "", err
	}
	if !in.SmallTalk && isContinuation(in.Text, in.History) {
		reply = pickOne(g.rnd, continuationPrefixes) + reply
	}
	return g.localize(ctx, reply, in.Locale), nil
}

func (g *ResponseGenerator) intentReply(ctx context.Context, intent domain.Intent, locale string) (string, error) {
	byLocale, ok := intentReplies[intent]
	if !ok {
		return "", fmt.Errorf("%w: no replies for intent %s", ErrResponseGenerationFailed, intent)
	}
	if key, ok := resolveLocaleKey(locale, byLocale); ok {
		return pickOne(g.rnd, byLocale[key]), nil
	}
	return g.localize(ctx, pickOne(g.rnd, byLocale[defaultLocaleKey]), locale), nil
}

// emotionReply busca el banco emocion x tema en el orden de los temas detectados
// y cae en la rama general de forma explicita.
func (g *ResponseGenerator) emotionReply(c domain.Classification) (string, error) {
	banks, ok := emotionTemplates[c.Emotion]
	if !ok {
		return "", fmt.Errorf("%w: no templates for emotion %q", ErrResponseGenerationFailed, c.Emotion)
	}
	bucket := banks[domain.TopicGeneral]
	for _, topic := range c.Topics {
		if topic == domain.TopicGeneral {
			continue
		}
		if specific, ok := banks[topic]; ok && len(specific) > 0 {
			bucket = specific
			break
		}
	}
	if len(bucket) == 0 {
		return "", fmt.Errorf("%w: empty general bucket for %q", ErrResponseGenerationFailed, c.Emotion)
	}
	return pickOne(g.rnd, bucket) + intensityModifiers[c.Intensity], nil
}

func (g *ResponseGenerator) localize(ctx context.Context, text, locale string) string {
	if g.translator == nil || isEnglishLocale(locale) {
		return text
	}
	translated, err := g.translator.Translate(ctx, text, locale)
	if err != nil {
		g.logger.Warn("translation failed, answering in english", zap.String("locale", locale), zap.Error(err))
		return text
	}
	return translated
}

// isContinuation: hay historial y el enunciado trae un marcador de continuidad o es corto.
func isContinuation(text string, history []domain.Turn) bool {
	if len(history) == 0 {
		return false
	}
	norm := normalizeText(text)
	if norm == "" {
		return false
	}
	for _, marker := range continuationMarkers {
		if containsTerm(norm, marker) {
			return true
		}
	}
	return countWords(norm) <= continuationMaxWords
}
