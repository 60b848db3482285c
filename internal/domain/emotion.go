package domain

import "strings"

// Emotion es una de las seis categorias fijas que el clasificador puede emitir.
type Emotion string

const (
	EmotionHappiness Emotion = "happiness"
	EmotionSadness   Emotion = "sadness"
	EmotionAnxiety   Emotion = "anxiety"
	EmotionAnger     Emotion = "anger"
	EmotionStress    Emotion = "stress"
	EmotionConfusion Emotion = "confusion"
)

// Emotions devuelve las categorias en orden de declaracion; ese orden resuelve empates.
func Emotions() []Emotion {
	return []Emotion{
		EmotionHappiness,
		EmotionSadness,
		EmotionAnxiety,
		EmotionAnger,
		EmotionStress,
		EmotionConfusion,
	}
}

// ParseEmotion normaliza una etiqueta externa; ok=false si no pertenece al conjunto fijo.
func ParseEmotion(raw string) (Emotion, bool) {
	e := Emotion(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Emotions() {
		if e == known {
			return e, true
		}
	}
	return "", false
}

// Intensity es el nivel cualitativo de una emocion.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Rank ordena los niveles: low < medium < high.
func (i Intensity) Rank() int {
	switch i {
	case IntensityLow:
		return 1
	case IntensityMedium:
		return 2
	case IntensityHigh:
		return 3
	default:
		return 0
	}
}

// ParseIntensity acepta low/medium/high sin distinguir mayusculas.
func ParseIntensity(raw string) (Intensity, bool) {
	switch Intensity(strings.ToLower(strings.TrimSpace(raw))) {
	case IntensityLow:
		return IntensityLow, true
	case IntensityMedium:
		return IntensityMedium, true
	case IntensityHigh:
		return IntensityHigh, true
	}
	return "", false
}

// IntensityFromScore convierte una intensidad numerica [0,1] en nivel.
func IntensityFromScore(score float64) Intensity {
	switch {
	case score < 0.34:
		return IntensityLow
	case score < 0.67:
		return IntensityMedium
	default:
		return IntensityHigh
	}
}

// Topic es un area de vida detectada de forma independiente a la emocion.
type Topic string

const (
	TopicWork         Topic = "work"
	TopicFinancial    Topic = "financial"
	TopicAcademic     Topic = "academic"
	TopicRelationship Topic = "relationship"
	TopicFamily       Topic = "family"
	TopicHealth       Topic = "health"
	TopicFuture       Topic = "future"
	TopicSelfEsteem   Topic = "self-esteem"
	TopicLoneliness   Topic = "loneliness"
	// TopicGeneral no se extrae nunca; es la rama explicita de fallback de plantillas.
	TopicGeneral Topic = "general"
)

// EmotionResult es la salida inmutable del clasificador para un enunciado.
type EmotionResult struct {
	Emotion    Emotion   `json:"emotion"`
	Intensity  Intensity `json:"intensity"`
	Confidence float64   `json:"confidence"`
}

// Classification combina emocion y temas de un mismo enunciado.
type Classification struct {
	EmotionResult
	Topics []Topic `json:"topics"`
}

// HasTopic indica si el tema fue detectado.
func (c Classification) HasTopic(t Topic) bool {
	for _, topic := range c.Topics {
		if topic == t {
			return true
		}
	}
	return false
}
