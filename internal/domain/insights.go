package domain

type Insight struct {
	Type    string `json:"type"` // pattern, topics, progress
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ConversationInsights resume patrones de una conversacion.
type ConversationInsights struct {
	TurnCount        int             `json:"turn_count"`
	EmotionFrequency map[Emotion]int `json:"emotion_frequency"`
	DominantEmotion  Emotion         `json:"dominant_emotion,omitempty"`
	TopicsDiscussed  []Topic         `json:"topics_discussed"`
	Insights         []Insight       `json:"insights"`
	Recommendations  []string        `json:"recommendations"`
}
