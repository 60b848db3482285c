package domain

// HostedEmotion es el bloque emocional del contrato del servicio de respuestas alojado.
type HostedEmotion struct {
	Type       string   `json:"type"`
	Intensity  string   `json:"intensity"`
	Confidence float64  `json:"confidence"`
	Topics     []string `json:"topics"`
}

// HostedReply es la respuesta {text, emotion, language} del colaborador alojado.
type HostedReply struct {
	Text     string        `json:"text"`
	Emotion  HostedEmotion `json:"emotion"`
	Language string        `json:"language"`
}
