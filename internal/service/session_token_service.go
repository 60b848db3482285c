package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenService emite y valida los bearer tokens que atan un cliente a su sesion.
type SessionTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("session token invalid")
	ErrTokenExpired = errors.New("session token expired")
)

func NewSessionTokenService(secret string, ttl time.Duration) *SessionTokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "hearmeout",
	}
}

// Enabled es false cuando no hay secreto configurado.
func (s *SessionTokenService) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

func (s *SessionTokenService) TTL() time.Duration {
	return s.ttl
}

// Issue firma un token para la sesion y devuelve tambien su expiracion.
func (s *SessionTokenService) Issue(sessionID string) (string, time.Time, error) {
	if !s.Enabled() || strings.TrimSpace(sessionID) == "" {
		return "", time.Time{}, ErrTokenInvalid
	}
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *SessionTokenService) Parse(tokenString string) (SessionClaims, error) {
	if !s.Enabled() {
		return SessionClaims{}, ErrTokenInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return SessionClaims{}, ErrTokenInvalid
	}
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return SessionClaims{}, err
	}
	if !s.isValidClaims(claims) {
		return SessionClaims{}, ErrTokenInvalid
	}
	return claims, nil
}

func (s *SessionTokenService) parseToken(tokenString string) (SessionClaims, error) {
	var claims SessionClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SessionClaims{}, ErrTokenExpired
		}
		return SessionClaims{}, ErrTokenInvalid
	}
	return claims, nil
}

func (s *SessionTokenService) isValidClaims(claims SessionClaims) bool {
	if strings.TrimSpace(claims.SessionID) == "" {
		return false
	}
	if claims.Subject != claims.SessionID {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
