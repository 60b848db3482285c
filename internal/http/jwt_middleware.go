package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hearmeout/internal/service"
)

const sessionClaimsKey = "session_claims"

// SessionAuthMiddleware valida el bearer token de sesion y exige que coincida con :id.
func SessionAuthMiddleware(tokens *service.SessionTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tokens.Enabled() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session tokens not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := tokens.Parse(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, service.ErrTokenExpired) {
				msg = "token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}
		if id := c.Param("id"); id != "" && id != claims.SessionID {
			c.JSON(http.StatusForbidden, gin.H{"error": "token does not belong to this session"})
			c.Abort()
			return
		}

		c.Set(sessionClaimsKey, claims)
		c.Next()
	}
}

// GetSessionClaims obtiene los claims del token desde el contexto.
func GetSessionClaims(c *gin.Context) (service.SessionClaims, bool) {
	val, ok := c.Get(sessionClaimsKey)
	if !ok {
		return service.SessionClaims{}, false
	}
	claims, ok := val.(service.SessionClaims)
	return claims, ok
}
