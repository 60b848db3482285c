package llm

import (
	"context"
	"sync"

	"hearmeout/internal/domain"
)

// MockResponder permite tests sin llamar a un servicio real.
type MockResponder struct {
	mu       sync.Mutex
	Reply    domain.HostedReply
	Err      error
	Requests []HostedRequest
	// Block, si no es nil, se espera antes de responder (o hasta que expire el contexto).
	Block chan struct{}
}

func (m *MockResponder) Respond(ctx context.Context, req HostedRequest) (domain.HostedReply, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	block := m.Block
	m.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return domain.HostedReply{}, ctx.Err()
		}
	}
	return m.Reply, m.Err
}

// MockTranslator antepone Prefix al texto o devuelve Err.
type MockTranslator struct {
	Prefix string
	Err    error
	Calls  int
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return text, m.Err
	}
	return m.Prefix + text, nil
}
