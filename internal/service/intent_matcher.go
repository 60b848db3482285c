package service

import (
	"strings"
	"unicode/utf8"

	"hearmeout/internal/domain"
	"hearmeout/internal/lexicon"
)

const (
	quickIntentMaxWords = 6
	quickIntentMaxRunes = 60
)

// IntentRecognizer reconoce saludos, agradecimientos, despedidas y "como estas".
type IntentRecognizer interface {
	MatchIntent(text string) (domain.Intent, bool)
}

// IntentMatcher solo evalua enunciados cortos; uno largo siempre pasa al analisis completo.
type IntentMatcher struct {
	order   []domain.Intent
	phrases map[domain.Intent][]string
}

func NewIntentMatcher(store *lexicon.Store) *IntentMatcher {
	m := &IntentMatcher{
		order:   domain.Intents(),
		phrases: make(map[domain.Intent][]string),
	}
	for _, intent := range m.order {
		m.phrases[intent] = store.IntentPhrases(intent)
	}
	return m
}

func (m *IntentMatcher) MatchIntent(text string) (domain.Intent, bool) {
	norm := normalizeText(text)
	if norm == "" || countWords(norm) > quickIntentMaxWords || utf8.RuneCountInString(norm) > quickIntentMaxRunes {
		return "", false
	}
	for _, intent := range m.order {
		for _, p := range m.phrases[intent] {
			if containsTerm(norm, p) {
				return intent, true
			}
		}
	}
	return "", false
}

// Residual devuelve el texto normalizado sin las frases de intencion,
// para saber si queda algo mas que la cortesia.
func (m *IntentMatcher) Residual(text string) string {
	norm := normalizeText(text)
	for _, intent := range m.order {
		for _, p := range m.phrases[intent] {
			norm = stripTerm(norm, p)
		}
	}
	return strings.Join(strings.Fields(norm), " ")
}
