package llm

import (
	"context"
	"errors"

	"hearmeout/internal/domain"
)

// HostedRequest es el cuerpo que espera el servicio de respuestas alojado.
type HostedRequest struct {
	Text                string   `json:"text"`
	Language            string   `json:"language"`
	ConversationHistory []string `json:"conversationHistory"`
}

// Responder genera texto y clasificacion fuera del motor local.
type Responder interface {
	Respond(ctx context.Context, req HostedRequest) (domain.HostedReply, error)
}

// Translator traduce respuestas en ingles al idioma activo.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

var (
	ErrEmptyReply    = errors.New("llm empty reply")
	ErrInvalidReply  = errors.New("llm invalid reply")
	ErrNotConfigured = errors.New("llm client not configured")
)
