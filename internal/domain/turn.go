package domain

import "time"

const (
	TurnSourceLocal    = "local"
	TurnSourceHosted   = "hosted"
	TurnSourceIntent   = "intent"
	TurnSourceCrisis   = "crisis"
	TurnSourceFallback = "fallback"
)

// Turn registra un intercambio completo usuario/compañero.
// Classification es nil cuando el turno fallo durante el analisis.
type Turn struct {
	ID             string          `json:"id"`
	SessionID      string          `json:"session_id"`
	UserText       string          `json:"user_text"`
	Classification *Classification `json:"classification,omitempty"`
	Intent         Intent          `json:"intent,omitempty"`
	Crisis         bool            `json:"crisis"`
	Failed         bool            `json:"failed"`
	ResponseText   string          `json:"response_text"`
	Locale         string          `json:"locale"`
	Source         string          `json:"source"`
	Timestamp      time.Time       `json:"timestamp"`
}
