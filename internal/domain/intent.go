package domain

// Intent es un micro-movimiento conversacional resuelto antes del analisis emocional.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentThanks    Intent = "thanks"
	IntentGoodbye   Intent = "goodbye"
	IntentHowAreYou Intent = "how_are_you"
)

// Intents devuelve las intenciones en orden de evaluacion.
func Intents() []Intent {
	return []Intent{IntentGreeting, IntentThanks, IntentGoodbye, IntentHowAreYou}
}
