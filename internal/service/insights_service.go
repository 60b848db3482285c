package service

import (
	"fmt"
	"strings"

	"hearmeout/internal/domain"
)

const (
	patternMinCount    = 3
	progressMinTurns   = 5
	maxTopicsDiscussed = 3
	maxRecommendations = 3
)

var emotionRecommendations = map[domain.Emotion][]string{
	domain.EmotionAnxiety: {
		"Try the 4-7-8 breathing technique when anxiety peaks",
		"Consider grounding exercises like naming 5 things you can see",
	},
	domain.EmotionSadness: {
		"Gentle movement like walking can help with sadness",
		"Journaling your thoughts might provide clarity",
	},
	domain.EmotionStress: {
		"Progressive muscle relaxation can help release tension",
		"Break large tasks into smaller, manageable steps",
	},
	domain.EmotionAnger: {
		"Pausing for a few slow breaths before responding can take the edge off anger",
	},
	domain.EmotionConfusion: {
		"Writing down your options side by side can make a decision feel clearer",
	},
}

var topicRecommendations = map[domain.Topic]string{
	domain.TopicWork:         "Consider setting boundaries between work and personal time",
	domain.TopicRelationship: "Communication exercises might strengthen your relationships",
	domain.TopicFinancial:    "A simple weekly budget can make money worries feel more manageable",
	domain.TopicLoneliness:   "Reaching out to one person this week, even briefly, can ease loneliness",
}

// InsightsService resume patrones de una conversacion a partir de sus turnos.
type InsightsService struct{}

func NewInsightsService() *InsightsService {
	return &InsightsService{}
}

// Summarize ignora turnos fallidos y de intencion rapida: no describen un estado emocional.
func (s *InsightsService) Summarize(turns []domain.Turn) domain.ConversationInsights {
	out := domain.ConversationInsights{
		EmotionFrequency: make(map[domain.Emotion]int),
		TopicsDiscussed:  []domain.Topic{},
		Insights:         []domain.Insight{},
		Recommendations:  []string{},
	}

	seenTopics := make(map[domain.Topic]struct{})
	for _, t := range turns {
		if t.Failed || t.Classification == nil || t.Intent != "" {
			continue
		}
		out.TurnCount++
		out.EmotionFrequency[t.Classification.Emotion]++
		for _, topic := range t.Classification.Topics {
			if _, ok := seenTopics[topic]; ok || len(out.TopicsDiscussed) >= maxTopicsDiscussed {
				continue
			}
			seenTopics[topic] = struct{}{}
			out.TopicsDiscussed = append(out.TopicsDiscussed, topic)
		}
	}

	dominantCount := 0
	for _, e := range domain.Emotions() {
		if n := out.EmotionFrequency[e]; n > dominantCount {
			dominantCount = n
			out.DominantEmotion = e
		}
	}

	if dominantCount >= patternMinCount {
		out.Insights = append(out.Insights, domain.Insight{
			Type:    "pattern",
			Title:   "Emotional Pattern",
			Content: fmt.Sprintf("You've expressed %s frequently in our conversation. This might indicate an area that needs attention.", out.DominantEmotion),
		})
	}
	if len(out.TopicsDiscussed) > 0 {
		names := make([]string, 0, len(out.TopicsDiscussed))
		for _, t := range out.TopicsDiscussed {
			names = append(names, string(t))
		}
		out.Insights = append(out.Insights, domain.Insight{
			Type:    "topics",
			Title:   "Key Life Areas",
			Content: fmt.Sprintf("We've discussed %s. These seem to be important areas in your life right now.", strings.Join(names, ", ")),
		})
	}
	if out.TurnCount >= progressMinTurns {
		out.Insights = append(out.Insights, domain.Insight{
			Type:    "progress",
			Title:   "Conversation Depth",
			Content: fmt.Sprintf("You've shared %d messages with me. Opening up like this shows real strength and self-awareness.", out.TurnCount),
		})
	}

	out.Recommendations = append(out.Recommendations, emotionRecommendations[out.DominantEmotion]...)
	for _, t := range out.TopicsDiscussed {
		if rec, ok := topicRecommendations[t]; ok {
			out.Recommendations = append(out.Recommendations, rec)
		}
	}
	if len(out.Recommendations) > maxRecommendations {
		out.Recommendations = out.Recommendations[:maxRecommendations]
	}
	return out
}
