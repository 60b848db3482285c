package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"hearmeout/internal/domain"
)

const companionSystemPrompt = `You are HearMeOut, a compassionate mental health companion.
Respond only in %s.
Be warm, conversational and non-judgmental, like a supportive friend rather than a clinician.
Mirror a few of the user's own words so the reply feels personal, keep it to 1-3 sentences with no lists,
and end with one short follow-up question.
If the user mentions self-harm, take it seriously and suggest professional help.
Classify the user's message: emotion is one of happiness, sadness, anxiety, anger, stress, confusion;
intensity is low, medium or high; confidence is between 0 and 1; topics are short life-area tags.`

// companionReply es la forma estructurada que se le pide al modelo.
type companionReply struct {
	Response   string   `json:"response" jsonschema:"description=Supportive reply in the target language"`
	Emotion    string   `json:"emotion" jsonschema:"enum=happiness,enum=sadness,enum=anxiety,enum=anger,enum=stress,enum=confusion"`
	Intensity  string   `json:"intensity" jsonschema:"enum=low,enum=medium,enum=high"`
	Confidence float64  `json:"confidence"`
	Topics     []string `json:"topics"`
	Language   string   `json:"language"`
}

var companionReplySchema = generateSchema[companionReply]()

var languageNames = map[string]string{
	"hi-IN": "Hindi (हिन्दी)",
	"te-IN": "Telugu (తెలుగు)",
	"ta-IN": "Tamil (தமிழ்)",
	"ml-IN": "Malayalam (മലയാളം)",
	"kn-IN": "Kannada (ಕನ್ನಡ)",
	"bn-IN": "Bengali (বাংলা)",
	"gu-IN": "Gujarati (ગુજરાતી)",
	"mr-IN": "Marathi (मराठी)",
	"pa-IN": "Punjabi (ਪੰਜਾਬੀ)",
	"or-IN": "Odia (ଓଡ଼ିଆ)",
	"ur-IN": "Urdu (اردو)",
	"en-IN": "English (India)",
	"en-US": "English (US)",
	"es-ES": "Spanish (Español)",
	"fr-FR": "French (Français)",
	"de-DE": "German (Deutsch)",
	"pt-PT": "Portuguese (Português)",
	"ja-JP": "Japanese (日本語)",
	"ko-KR": "Korean (한국어)",
	"zh-CN": "Chinese Simplified (中文简体)",
	"ar-SA": "Arabic (العربية)",
	"ru-RU": "Russian (Русский)",
}

// LanguageName devuelve el nombre legible del idioma; ingles si no se conoce.
func LanguageName(tag string) string {
	if name, ok := languageNames[strings.TrimSpace(tag)]; ok {
		return name
	}
	return "English"
}

// OpenAIResponder es una alternativa al servicio alojado usando chat completions.
type OpenAIResponder struct {
	client openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIResponder(apiKey, baseURL, model string, logger *zap.Logger) *OpenAIResponder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(model) == "" {
		model = string(openai.ChatModelGPT4oMini)
	}
	return &OpenAIResponder{
		client: openai.NewClient(clientOptions(apiKey, baseURL)...),
		model:  model,
		logger: logger,
	}
}

func clientOptions(apiKey, baseURL string) []option.RequestOption {
	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if strings.TrimSpace(baseURL) != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return opts
}

func (r *OpenAIResponder) Respond(ctx context.Context, req HostedRequest) (domain.HostedReply, error) {
	if r == nil {
		return domain.HostedReply{}, ErrNotConfigured
	}
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(fmt.Sprintf(companionSystemPrompt, LanguageName(req.Language))),
	}
	if len(req.ConversationHistory) > 0 {
		messages = append(messages, openai.SystemMessage("Conversation history:\n"+strings.Join(req.ConversationHistory, "\n")))
	}
	messages = append(messages, openai.UserMessage(req.Text))

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(r.model),
		Messages: messages,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "companion_reply",
					Schema: companionReplySchema,
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return domain.HostedReply{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return domain.HostedReply{}, ErrEmptyReply
	}

	raw := resp.Choices[0].Message.Content
	reply, err := parseCompanionReply(raw)
	if err != nil {
		r.logger.Warn("openai reply not parseable", zap.Error(err))
		return domain.HostedReply{}, err
	}
	if reply.Language == "" {
		reply.Language = req.Language
	}
	return reply, nil
}

func parseCompanionReply(raw string) (domain.HostedReply, error) {
	cleaned := cleanJSONReply(raw)
	var cr companionReply
	if err := json.Unmarshal([]byte(cleaned), &cr); err != nil {
		obj := extractFirstJSONObject(cleaned)
		if obj == "" {
			return domain.HostedReply{}, fmt.Errorf("%w: no json object", ErrInvalidReply)
		}
		if err := json.Unmarshal([]byte(obj), &cr); err != nil {
			return domain.HostedReply{}, fmt.Errorf("%w: %v", ErrInvalidReply, err)
		}
	}
	if strings.TrimSpace(cr.Response) == "" {
		return domain.HostedReply{}, ErrEmptyReply
	}
	return domain.HostedReply{
		Text: strings.TrimSpace(cr.Response),
		Emotion: domain.HostedEmotion{
			Type:       strings.ToLower(strings.TrimSpace(cr.Emotion)),
			Intensity:  strings.ToLower(strings.TrimSpace(cr.Intensity)),
			Confidence: cr.Confidence,
			Topics:     cr.Topics,
		},
		Language: cr.Language,
	}, nil
}
