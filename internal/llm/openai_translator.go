package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"go.uber.org/zap"
)

// OpenAITranslator traduce respuestas cortas; ante cualquier fallo devuelve el texto original.
type OpenAITranslator struct {
	client openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAITranslator(apiKey, baseURL, model string, logger *zap.Logger) *OpenAITranslator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(model) == "" {
		model = string(openai.ChatModelGPT4oMini)
	}
	return &OpenAITranslator{
		client: openai.NewClient(clientOptions(apiKey, baseURL)...),
		model:  model,
		logger: logger,
	}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if strings.TrimSpace(text) == "" || isEnglishTag(targetLanguage) {
		return text, nil
	}
	if t == nil {
		return text, ErrNotConfigured
	}
	prompt := fmt.Sprintf("Translate the following text into %s. Respond with the translation only.", LanguageName(targetLanguage))
	resp, err := t.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(t.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return text, fmt.Errorf("translate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return text, nil
	}
	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return text, nil
	}
	return translated, nil
}

func isEnglishTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return tag == "" || tag == "en" || strings.HasPrefix(tag, "en-") || strings.HasPrefix(tag, "en_")
}
