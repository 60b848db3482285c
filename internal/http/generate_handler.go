package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hearmeout/internal/service"
)

// GenerateHandler expone el contrato generate-response resuelto por el motor local.
type GenerateHandler struct {
	logger          *zap.Logger
	engine          *service.SessionEngine
	defaultLanguage string
}

func NewGenerateHandler(logger *zap.Logger, engine *service.SessionEngine, defaultLanguage string) *GenerateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateHandler{logger: logger, engine: engine, defaultLanguage: defaultLanguage}
}

// GenerateResponse maneja POST /generate-response.
func (h *GenerateHandler) GenerateResponse(c *gin.Context) {
	var req struct {
		Text                string   `json:"text"`
		Language            string   `json:"language"`
		ConversationHistory []string `json:"conversationHistory"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate response request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = service.DetectLanguage(req.Text, h.defaultLanguage)
	}

	reply, err := h.engine.Analyze(c.Request.Context(), req.Text, language, req.ConversationHistory)
	if err != nil {
		if errors.Is(err, service.ErrEmptyUtterance) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}
		h.logger.Error("generate response failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate response"})
		return
	}
	c.JSON(http.StatusOK, reply)
}
