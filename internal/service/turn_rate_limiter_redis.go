package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// El contador vive una ventana fija; se devuelve junto con el PTTL para informar
// cuando se libera el cupo. Una clave sin expiracion se repara con la ventana.
const redisTurnReserveScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {current, ttl}
`

const turnLimiterTimeout = 500 * time.Millisecond

// TurnQuota es el resultado de reservar un turno. Limit 0 significa cupo desconocido
// (limitador caido o deshabilitado).
type TurnQuota struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// TurnRateLimiter limita turnos por sesion. Ante fallas de redis deja pasar.
type TurnRateLimiter interface {
	Reserve(ctx context.Context, sessionID string) TurnQuota
}

type redisTurnRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

func NewRedisTurnRateLimiter(client *redis.Client, window time.Duration, max int) TurnRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisTurnRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "turn:rl:",
	}
}

func (l *redisTurnRateLimiter) Reserve(ctx context.Context, sessionID string) TurnQuota {
	if l == nil || l.client == nil {
		return TurnQuota{Allowed: true}
	}
	key := strings.TrimSpace(sessionID)
	if key == "" {
		return TurnQuota{Limit: l.max}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, turnLimiterTimeout)
	defer cancel()

	windowMs := l.window.Milliseconds()
	if windowMs <= 0 {
		windowMs = time.Minute.Milliseconds()
	}
	vals, err := l.client.Eval(ctx, redisTurnReserveScript, []string{l.prefix + key}, windowMs).Int64Slice()
	if err != nil || len(vals) != 2 {
		return TurnQuota{Allowed: true}
	}

	count, ttl := int(vals[0]), time.Duration(vals[1])*time.Millisecond
	quota := TurnQuota{Allowed: count <= l.max, Limit: l.max, Remaining: l.max - count}
	if quota.Remaining < 0 {
		quota.Remaining = 0
	}
	if !quota.Allowed {
		quota.RetryAfter = ttl
	}
	return quota
}
