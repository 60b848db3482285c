package service

import (
	"hearmeout/internal/config"
	"hearmeout/internal/domain"
	"hearmeout/internal/lexicon"
)

const (
	negativeOverrideConfidence = 0.85
	neutralFallbackConfidence  = 0.3
	confidenceScale            = 8.0
)

// EmotionScorer clasifica un enunciado en una de las seis emociones fijas.
type EmotionScorer interface {
	Classify(text string) domain.EmotionResult
}

// EmotionSignaler indica si un texto trae alguna señal emocional del lexico.
type EmotionSignaler interface {
	HasSignal(text string) bool
}

// EmotionClassifier puntua el texto contra el lexico. Es de solo lectura y seguro para uso concurrente.
type EmotionClassifier struct {
	categories []lexicon.Category
	overrides  []string
	tierPolicy string
}

func NewEmotionClassifier(store *lexicon.Store, tierPolicy string) *EmotionClassifier {
	c := &EmotionClassifier{
		overrides:  store.NegativeOverrides(),
		tierPolicy: tierPolicy,
	}
	if c.tierPolicy != config.TierPolicyMax {
		c.tierPolicy = config.TierPolicyLast
	}
	for _, e := range domain.Emotions() {
		if cat, ok := store.LookupCategory(e); ok {
			c.categories = append(c.categories, cat)
		}
	}
	return c
}

// Classify nunca falla: sin coincidencias devuelve happiness/low/0.3.
// Un texto vacio devuelve happiness/low con confianza 0; la sesion lo rechaza antes.
func (c *EmotionClassifier) Classify(text string) domain.EmotionResult {
	norm := normalizeText(text)
	if norm == "" {
		return domain.EmotionResult{Emotion: domain.EmotionHappiness, Intensity: domain.IntensityLow}
	}

	if c.matchesOverride(norm) {
		return domain.EmotionResult{
			Emotion:    domain.EmotionSadness,
			Intensity:  domain.IntensityMedium,
			Confidence: negativeOverrideConfidence,
		}
	}

	var (
		bestScore     int
		bestEmotion   domain.Emotion
		bestIntensity domain.Intensity
	)
	for _, cat := range c.categories {
		score, intensity := c.scoreCategory(norm, cat)
		// Estrictamente mayor: el empate lo gana la categoria declarada antes.
		if score > bestScore {
			bestScore = score
			bestEmotion = cat.Emotion
			bestIntensity = intensity
		}
	}

	if bestScore == 0 {
		return domain.EmotionResult{
			Emotion:    domain.EmotionHappiness,
			Intensity:  domain.IntensityLow,
			Confidence: neutralFallbackConfidence,
		}
	}

	confidence := float64(bestScore) / confidenceScale
	if confidence > 1 {
		confidence = 1
	}
	return domain.EmotionResult{
		Emotion:    bestEmotion,
		Intensity:  bestIntensity,
		Confidence: confidence,
	}
}

func (c *EmotionClassifier) scoreCategory(norm string, cat lexicon.Category) (int, domain.Intensity) {
	score := 0
	var intensity domain.Intensity
	for _, kw := range cat.Keywords {
		if !containsTerm(norm, kw.Term) {
			continue
		}
		score += kw.Weight
		tier, ok := cat.TierOf(kw.Term)
		if !ok {
			continue
		}
		switch c.tierPolicy {
		case config.TierPolicyMax:
			if tier.Rank() > intensity.Rank() {
				intensity = tier
			}
		default:
			intensity = tier
		}
	}
	for _, ph := range cat.Phrases {
		if containsTerm(norm, ph.Term) {
			score += ph.Weight
		}
	}
	if intensity == "" {
		intensity = domain.IntensityMedium
	}
	return score, intensity
}

// HasSignal es verdadero si coincide una anulacion negativa o alguna categoria puntua.
func (c *EmotionClassifier) HasSignal(text string) bool {
	norm := normalizeText(text)
	if norm == "" {
		return false
	}
	if c.matchesOverride(norm) {
		return true
	}
	for _, cat := range c.categories {
		if score, _ := c.scoreCategory(norm, cat); score > 0 {
			return true
		}
	}
	return false
}

func (c *EmotionClassifier) matchesOverride(norm string) bool {
	for _, phrase := range c.overrides {
		if containsTerm(norm, phrase) {
			return true
		}
	}
	return false
}
