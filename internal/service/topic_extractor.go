package service

import (
	"hearmeout/internal/domain"
	"hearmeout/internal/lexicon"
)

// TopicScanner detecta areas de vida en un enunciado.
type TopicScanner interface {
	ExtractTopics(text string) []domain.Topic
}

// TopicExtractor es independiente del clasificador: comparten texto, no puntaje.
type TopicExtractor struct {
	topics []lexicon.TopicKeywords
}

func NewTopicExtractor(store *lexicon.Store) *TopicExtractor {
	return &TopicExtractor{topics: store.LookupTopics()}
}

// ExtractTopics devuelve los temas en orden de prioridad del lexico, sin repetir.
func (e *TopicExtractor) ExtractTopics(text string) []domain.Topic {
	norm := normalizeText(text)
	out := []domain.Topic{}
	if norm == "" {
		return out
	}
	for _, t := range e.topics {
		for _, kw := range t.Keywords {
			if containsWordPrefix(norm, kw) {
				out = append(out, t.Topic)
				break
			}
		}
	}
	return out
}
