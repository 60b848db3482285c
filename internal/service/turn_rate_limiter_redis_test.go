package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     []interface{}
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func evalResult(count, ttlMs int64) []interface{} {
	return []interface{}{count, ttlMs}
}

func TestRedisTurnRateLimiterReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisTurnRateLimiter
		if q := l.Reserve(ctx, "s1"); !q.Allowed || q.Limit != 0 {
			t.Fatalf("expected fail-open for nil limiter, got %+v", q)
		}
	})

	t.Run("nil client yields no limiter", func(t *testing.T) {
		if NewRedisTurnRateLimiter(nil, time.Minute, 3) != nil {
			t.Fatalf("expected nil limiter without redis")
		}
	})

	t.Run("empty session rejected", func(t *testing.T) {
		l := &redisTurnRateLimiter{client: &mockRedisEvaler{result: evalResult(1, 60000)}, window: time.Minute, max: 3, prefix: "turn:rl:"}
		if q := l.Reserve(ctx, "   "); q.Allowed {
			t.Fatalf("expected empty session id to be rejected")
		}
	})

	t.Run("allow reports remaining budget", func(t *testing.T) {
		mock := &mockRedisEvaler{result: evalResult(2, 90000)}
		l := &redisTurnRateLimiter{client: mock, window: 2 * time.Minute, max: 3, prefix: "turn:rl:"}
		q := l.Reserve(ctx, " s1 ")
		if !q.Allowed || q.Limit != 3 || q.Remaining != 1 || q.RetryAfter != 0 {
			t.Fatalf("unexpected quota %+v", q)
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "turn:rl:s1" {
			t.Fatalf("unexpected key, got %+v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != int64(120000) {
			t.Fatalf("expected window ms=120000, got %+v", mock.lastArgs)
		}
		if mock.lastScript != redisTurnReserveScript {
			t.Fatalf("expected script to match")
		}
	})

	t.Run("deny carries retry after", func(t *testing.T) {
		l := &redisTurnRateLimiter{client: &mockRedisEvaler{result: evalResult(4, 12500)}, window: time.Minute, max: 3, prefix: "turn:rl:"}
		q := l.Reserve(ctx, "s1")
		if q.Allowed || q.Remaining != 0 || q.RetryAfter != 12500*time.Millisecond {
			t.Fatalf("expected deny with retry after, got %+v", q)
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisTurnRateLimiter{client: &mockRedisEvaler{err: errors.New("redis down")}, window: time.Minute, max: 3, prefix: "turn:rl:"}
		if q := l.Reserve(ctx, "s1"); !q.Allowed || q.Limit != 0 {
			t.Fatalf("expected fail-open on redis errors, got %+v", q)
		}
	})

	t.Run("malformed reply fail-open", func(t *testing.T) {
		l := &redisTurnRateLimiter{client: &mockRedisEvaler{result: []interface{}{int64(9)}}, window: time.Minute, max: 3, prefix: "turn:rl:"}
		if q := l.Reserve(ctx, "s1"); !q.Allowed {
			t.Fatalf("expected fail-open on malformed reply, got %+v", q)
		}
	})
}

func TestRedisTurnRateLimiter_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	ctx := context.Background()

	l := NewRedisTurnRateLimiter(client, time.Minute, 2)
	if q := l.Reserve(ctx, "s1"); !q.Allowed || q.Remaining != 1 {
		t.Fatalf("expected first turn allowed with one left, got %+v", q)
	}
	if q := l.Reserve(ctx, "s1"); !q.Allowed || q.Remaining != 0 {
		t.Fatalf("expected second turn allowed with none left, got %+v", q)
	}

	mr.FastForward(20 * time.Second)
	q := l.Reserve(ctx, "s1")
	if q.Allowed {
		t.Fatalf("expected third turn denied")
	}
	if q.RetryAfter <= 0 || q.RetryAfter > 40*time.Second {
		t.Fatalf("expected retry after within the remaining window, got %v", q.RetryAfter)
	}
	if q := l.Reserve(ctx, "s2"); !q.Allowed {
		t.Fatalf("expected other sessions unaffected")
	}
	if ttl := mr.TTL("turn:rl:s2"); ttl != time.Minute {
		t.Fatalf("expected window TTL on counter, got %v", ttl)
	}

	mr.FastForward(61 * time.Second)
	if q := l.Reserve(ctx, "s1"); !q.Allowed {
		t.Fatalf("expected counter reset after window")
	}
}
