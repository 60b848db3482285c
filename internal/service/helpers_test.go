package service

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"hearmeout/internal/config"
	"hearmeout/internal/domain"
	"hearmeout/internal/lexicon"
)

// fixedRandomizer siempre elige el mismo indice (acotado al largo).
type fixedRandomizer struct{ index int }

func (f fixedRandomizer) IntN(n int) int {
	if f.index >= n {
		return n - 1
	}
	return f.index
}

func newTestEngine(t *testing.T, opts EngineOptions) *SessionEngine {
	t.Helper()
	if opts.Randomizer == nil {
		opts.Randomizer = fixedRandomizer{}
	}
	if opts.TierPolicy == "" {
		opts.TierPolicy = config.TierPolicyLast
	}
	engine := NewSessionEngine(lexicon.NewDefaultStore(), opts, zap.NewNop())
	engine.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return engine
}

func bucketFor(emotion domain.Emotion, topic domain.Topic) []string {
	return emotionTemplates[emotion][topic]
}

func containsString(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}

// withModifiers agrega cada variante posible de cierre por intensidad.
func withModifiers(options []string) []string {
	out := make([]string, 0, len(options)*3)
	for _, o := range options {
		out = append(out, o, o+intensityModifiers[domain.IntensityHigh], o+intensityModifiers[domain.IntensityLow])
	}
	return out
}
