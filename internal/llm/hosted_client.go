package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"hearmeout/internal/domain"
)

// HTTPResponder implementa Responder contra el endpoint generate-response alojado.
type HTTPResponder struct {
	url    string
	apiKey string
	client *http.Client
	logger *zap.Logger
}

// NewHTTPResponder construye el cliente; el timeout por turno lo pone quien llama via context.
func NewHTTPResponder(url, apiKey string, httpClient *http.Client, logger *zap.Logger) *HTTPResponder {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPResponder{
		url:    strings.TrimSpace(url),
		apiKey: apiKey,
		client: httpClient,
		logger: logger,
	}
}

func (c *HTTPResponder) Respond(ctx context.Context, req HostedRequest) (domain.HostedReply, error) {
	if c == nil || c.url == "" {
		return domain.HostedReply{}, ErrNotConfigured
	}
	if req.ConversationHistory == nil {
		req.ConversationHistory = []string{}
	}

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return domain.HostedReply{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.HostedReply{}, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return domain.HostedReply{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.HostedReply{}, fmt.Errorf("read response: %w", err)
	}

	var hr hostedResponse
	decodeErr := json.Unmarshal(respBody, &hr)

	if resp.StatusCode >= 400 {
		c.logger.Warn("hosted responder error status", zap.Int("status", resp.StatusCode))
		if decodeErr == nil && hr.Error != "" {
			return domain.HostedReply{}, fmt.Errorf("hosted http error: status=%d: %s", resp.StatusCode, hr.Error)
		}
		return domain.HostedReply{}, fmt.Errorf("hosted http error: status=%d", resp.StatusCode)
	}
	if decodeErr != nil {
		return domain.HostedReply{}, fmt.Errorf("unmarshal response: %w", decodeErr)
	}
	if hr.Error != "" {
		return domain.HostedReply{}, fmt.Errorf("hosted api error: %s", hr.Error)
	}
	if strings.TrimSpace(hr.Text) == "" {
		return domain.HostedReply{}, ErrEmptyReply
	}

	intensity, ok := hr.Emotion.Intensity.level()
	if !ok {
		c.logger.Warn("hosted intensity unusable, normalized", zap.ByteString("intensity", hr.Emotion.Intensity), zap.String("level", string(intensity)))
	}
	return domain.HostedReply{
		Text: strings.TrimSpace(hr.Text),
		Emotion: domain.HostedEmotion{
			Type:       strings.ToLower(strings.TrimSpace(hr.Emotion.Type)),
			Intensity:  string(intensity),
			Confidence: hr.Emotion.Confidence,
			Topics:     hr.Emotion.Topics,
		},
		Language: hr.Language,
	}, nil
}

type hostedResponse struct {
	Text    string `json:"text"`
	Emotion struct {
		Type       string          `json:"type"`
		Intensity  hostedIntensity `json:"intensity"`
		Confidence float64         `json:"confidence"`
		Topics     []string        `json:"topics"`
	} `json:"emotion"`
	Language string `json:"language"`
	Error    string `json:"error,omitempty"`
}

// hostedIntensity acepta "low|medium|high" o un numero en [0,1]; ambas variantes circulan.
type hostedIntensity []byte

func (h *hostedIntensity) UnmarshalJSON(b []byte) error {
	*h = append((*h)[:0], b...)
	return nil
}

// level nunca descarta la respuesta: un valor ilegible queda en medium (ok=false)
// y un numero fuera de rango se recorta a [0,1].
func (h hostedIntensity) level() (domain.Intensity, bool) {
	raw := strings.TrimSpace(string(h))
	if raw == "" || raw == "null" {
		return domain.IntensityMedium, true
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return domain.IntensityMedium, false
		}
		if level, ok := domain.ParseIntensity(s); ok {
			return level, true
		}
		raw = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return domain.IntensityMedium, false
	}
	return scoreLevel(f)
}

func scoreLevel(f float64) (domain.Intensity, bool) {
	ok := f >= 0 && f <= 1
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return domain.IntensityFromScore(f), ok
}
