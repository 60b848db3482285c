package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"hearmeout/internal/domain"
)

type mockRedisKVClient struct {
	lastSetKey string
	lastSetTTL time.Duration
	lastGetKey string
	lastDel    []string
	stored     []byte

	setErr error
	getErr error
	delErr error
}

func (m *mockRedisKVClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.lastSetKey = key
	m.lastSetTTL = expiration
	if b, ok := value.([]byte); ok {
		m.stored = b
	}
	cmd := redis.NewStatusCmd(ctx)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	cmd.SetVal("OK")
	return cmd
}

func (m *mockRedisKVClient) Get(ctx context.Context, key string) *redis.StringCmd {
	m.lastGetKey = key
	cmd := redis.NewStringCmd(ctx)
	switch {
	case m.getErr != nil:
		cmd.SetErr(m.getErr)
	case m.stored == nil:
		cmd.SetErr(redis.Nil)
	default:
		cmd.SetVal(string(m.stored))
	}
	return cmd
}

func (m *mockRedisKVClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.lastDel = keys
	cmd := redis.NewIntCmd(ctx)
	if m.delErr != nil {
		cmd.SetErr(m.delErr)
		return cmd
	}
	m.stored = nil
	cmd.SetVal(1)
	return cmd
}

func sampleSnapshot(id string) domain.SessionSnapshot {
	cls := domain.Classification{
		EmotionResult: domain.EmotionResult{Emotion: domain.EmotionStress, Intensity: domain.IntensityMedium, Confidence: 1},
		Topics:        []domain.Topic{domain.TopicFinancial},
	}
	return domain.SessionSnapshot{
		Session:   domain.Session{ID: id, Locale: "en-US", CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		TurnCount: 3,
		History: []domain.Turn{
			{ID: "t1", SessionID: id, UserText: "hello", Intent: domain.IntentGreeting, Source: domain.TurnSourceIntent},
			{ID: "t2", SessionID: id, UserText: "money is tight", Classification: &cls, Source: domain.TurnSourceLocal},
			{ID: "t3", SessionID: id, UserText: "boom", Failed: true, Source: domain.TurnSourceFallback},
		},
	}
}

func assertSnapshot(t *testing.T, got domain.SessionSnapshot, want domain.SessionSnapshot) {
	t.Helper()
	if got.Session.ID != want.Session.ID || got.Session.Locale != want.Session.Locale || got.TurnCount != want.TurnCount {
		t.Fatalf("unexpected snapshot header %+v", got)
	}
	if len(got.History) != len(want.History) {
		t.Fatalf("expected %d turns, got %d", len(want.History), len(got.History))
	}
	if got.History[1].Classification == nil || got.History[1].Classification.Emotion != domain.EmotionStress {
		t.Fatalf("expected classification to survive, got %+v", got.History[1].Classification)
	}
	if got.History[2].Classification != nil || !got.History[2].Failed {
		t.Fatalf("expected failed turn without classification, got %+v", got.History[2])
	}
}

func TestMemoryHistoryStore_Basics(t *testing.T) {
	store := NewMemoryHistoryStore()

	_, ok, err := store.Load("missing")
	if err != nil || ok {
		t.Fatalf("expected missing snapshot false,nil; got %v,%v", ok, err)
	}

	want := sampleSnapshot("s1")
	if err := store.Save(want, 50*time.Millisecond); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	want.History[0].UserText = "mutated"

	got, ok, err := store.Load("s1")
	if err != nil || !ok {
		t.Fatalf("expected snapshot, got %v,%v", ok, err)
	}
	if got.History[0].UserText != "hello" {
		t.Fatalf("expected store to keep its own copy, got %q", got.History[0].UserText)
	}

	time.Sleep(70 * time.Millisecond)
	if _, ok, _ := store.Load("s1"); ok {
		t.Fatalf("expected snapshot expired")
	}
}

func TestMemoryHistoryStore_DeleteAndEmptyID(t *testing.T) {
	store := NewMemoryHistoryStore()
	if err := store.Save(domain.SessionSnapshot{}, time.Minute); err != nil {
		t.Fatalf("empty id save should be no-op, got %v", err)
	}
	if err := store.Save(sampleSnapshot("s2"), time.Minute); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete("s2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := store.Load("s2"); ok {
		t.Fatalf("expected deleted snapshot absent")
	}
}

func TestRedisHistoryStore_Basics(t *testing.T) {
	mock := &mockRedisKVClient{}
	store := &redisHistoryStore{client: mock, prefix: "session:snapshot:"}

	want := sampleSnapshot("s1")
	if err := store.Save(want, time.Hour); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if mock.lastSetKey != "session:snapshot:s1" || mock.lastSetTTL != time.Hour {
		t.Fatalf("unexpected set key=%q ttl=%v", mock.lastSetKey, mock.lastSetTTL)
	}

	got, ok, err := store.Load("s1")
	if err != nil || !ok {
		t.Fatalf("expected snapshot, got %v,%v", ok, err)
	}
	assertSnapshot(t, got, want)

	if err := store.Delete("s1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(mock.lastDel) != 1 || mock.lastDel[0] != "session:snapshot:s1" {
		t.Fatalf("unexpected del key: %+v", mock.lastDel)
	}
	if _, ok, err := store.Load("s1"); err != nil || ok {
		t.Fatalf("expected missing after delete, got %v,%v", ok, err)
	}
}

func TestRedisHistoryStore_ErrorPaths(t *testing.T) {
	mock := &mockRedisKVClient{
		setErr: errors.New("set failed"),
		getErr: errors.New("get failed"),
		delErr: errors.New("del failed"),
	}
	store := &redisHistoryStore{client: mock, prefix: "session:snapshot:"}

	if err := store.Save(domain.SessionSnapshot{}, time.Minute); err != nil {
		t.Fatalf("empty id save should be no-op, got %v", err)
	}
	if _, ok, err := store.Load(" "); err != nil || ok {
		t.Fatalf("empty id load should be false,nil; got %v,%v", ok, err)
	}
	if err := store.Save(sampleSnapshot("s1"), time.Minute); err == nil {
		t.Fatalf("expected save error")
	}
	if _, _, err := store.Load("s1"); err == nil {
		t.Fatalf("expected load error")
	}
	if err := store.Delete("s1"); err == nil {
		t.Fatalf("expected delete error")
	}

	corrupt := &mockRedisKVClient{stored: []byte("{not json")}
	store = &redisHistoryStore{client: corrupt, prefix: "session:snapshot:"}
	if _, _, err := store.Load("s1"); err == nil {
		t.Fatalf("expected unmarshal error for corrupt payload")
	}
}

func TestRedisHistoryStore_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewRedisHistoryStore(client)
	want := sampleSnapshot("s1")
	if err := store.Save(want, time.Minute); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !mr.Exists("session:snapshot:s1") {
		t.Fatalf("expected prefixed key in redis")
	}

	got, ok, err := store.Load("s1")
	if err != nil || !ok {
		t.Fatalf("expected snapshot, got %v,%v", ok, err)
	}
	assertSnapshot(t, got, want)

	mr.FastForward(2 * time.Minute)
	if _, ok, err := store.Load("s1"); err != nil || ok {
		t.Fatalf("expected snapshot expired, got %v,%v", ok, err)
	}
}
