package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hearmeout/internal/domain"
	"hearmeout/internal/service"
)

// ChatHandler mantiene dependencias para endpoints de sesiones y turnos.
type ChatHandler struct {
	logger          *zap.Logger
	sessions        *service.SessionManager
	tokens          *service.SessionTokenService
	limiter         service.TurnRateLimiter
	journal         *service.TurnJournalService
	insights        *service.InsightsService
	defaultLanguage string
}

// NewChatHandler crea una instancia de ChatHandler; limiter y journal pueden ser nil.
func NewChatHandler(
	logger *zap.Logger,
	sessions *service.SessionManager,
	tokens *service.SessionTokenService,
	limiter service.TurnRateLimiter,
	journal *service.TurnJournalService,
	insights *service.InsightsService,
	defaultLanguage string,
) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if insights == nil {
		insights = service.NewInsightsService()
	}
	return &ChatHandler{
		logger:          logger,
		sessions:        sessions,
		tokens:          tokens,
		limiter:         limiter,
		journal:         journal,
		insights:        insights,
		defaultLanguage: defaultLanguage,
	}
}

// CreateSession maneja POST /sessions.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = h.defaultLanguage
	}

	s := h.sessions.Create(language)
	session := domain.Session{ID: s.ID(), Locale: s.Locale(), CreatedAt: s.CreatedAt()}

	var token string
	if h.tokens.Enabled() {
		signed, expiresAt, err := h.tokens.Issue(s.ID())
		if err != nil {
			h.logger.Error("issue session token failed", zap.Error(err))
			h.sessions.Delete(s.ID())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
			return
		}
		token = signed
		session.ExpiresAt = expiresAt
	}

	if err := h.journal.OpenSession(c.Request.Context(), session); err != nil {
		h.logger.Warn("journal open session failed", zap.String("session_id", session.ID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"session": session, "token": token})
}

// PostTurn maneja POST /sessions/:id/turns.
func (h *ChatHandler) PostTurn(c *gin.Context) {
	sessionID := c.Param("id")
	var req struct {
		Text     string `json:"text" binding:"required"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post turn request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	if h.limiter != nil {
		quota := h.limiter.Reserve(c.Request.Context(), sessionID)
		writeQuotaHeaders(c, quota)
		if !quota.Allowed {
			h.logger.Warn("turn rate limited", h.sessionFields(c, sessionID, zap.Duration("retry_after", quota.RetryAfter))...)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":               service.ErrRateLimited.Error(),
				"retry_after_seconds": retryAfterSeconds(quota.RetryAfter),
			})
			return
		}
	}

	// Sin idioma explicito solo se cambia si la escritura no es la del idioma de la sesion.
	language := strings.TrimSpace(req.Language)
	if language == "" {
		s, err := h.sessions.Get(sessionID)
		if err != nil {
			h.writeSessionError(c, err)
			return
		}
		language = service.TurnLocale(s.Locale(), req.Text)
	}

	turn, err := h.sessions.ProcessTurn(c.Request.Context(), sessionID, req.Text, language)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}

	if err := h.journal.Record(c.Request.Context(), turn); err != nil {
		h.logger.Warn("journal record failed", h.sessionFields(c, sessionID, zap.Error(err))...)
	}

	state := service.StateIdle
	if s, err := h.sessions.Get(sessionID); err == nil {
		state = s.State()
	}
	c.JSON(http.StatusCreated, gin.H{"turn": turn, "state": state})
}

// GetHistory maneja GET /sessions/:id/history.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": s.ID(),
		"locale":     s.Locale(),
		"turn_count": s.TurnCount(),
		"history":    s.History(),
	})
}

// GetInsights maneja GET /sessions/:id/insights. Con journal usa la conversacion completa.
func (h *ChatHandler) GetInsights(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}

	turns := s.History()
	if h.journal.Enabled() {
		journaled, err := h.journal.ListBySession(c.Request.Context(), s.ID())
		if err != nil {
			h.logger.Warn("journal list failed, using window", h.sessionFields(c, s.ID(), zap.Error(err))...)
		} else if len(journaled) > 0 {
			turns = journaled
		}
	}

	c.JSON(http.StatusOK, h.insights.Summarize(turns))
}

func (h *ChatHandler) writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrEmptyUtterance):
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
	default:
		h.logger.Error("session request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process turn"})
	}
}

// sessionFields agrega el sid del token cuando el middleware lo dejo en el contexto.
func (h *ChatHandler) sessionFields(c *gin.Context, sessionID string, extra ...zap.Field) []zap.Field {
	fields := []zap.Field{zap.String("session_id", sessionID)}
	if claims, ok := GetSessionClaims(c); ok {
		fields = append(fields, zap.String("sid", claims.SessionID))
		if claims.ExpiresAt != nil {
			fields = append(fields, zap.Time("token_expires_at", claims.ExpiresAt.Time))
		}
	}
	return append(fields, extra...)
}

func writeQuotaHeaders(c *gin.Context, quota service.TurnQuota) {
	if quota.Limit <= 0 {
		return
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(quota.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(quota.Remaining))
	if !quota.Allowed {
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(quota.RetryAfter)))
	}
}

// Retry-After va en segundos enteros, redondeado hacia arriba y nunca menor a 1.
func retryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
