package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestHTTPResponder_Respond(t *testing.T) {
	var got HostedRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":" That sounds heavy. ","emotion":{"type":"Sadness","intensity":"high","confidence":0.8,"topics":["family"]},"language":"en-US"}`))
	}))
	defer srv.Close()

	c := NewHTTPResponder(srv.URL, "key-1", srv.Client(), zap.NewNop())
	reply, err := c.Respond(context.Background(), HostedRequest{Text: "I miss my dad", Language: "en-US"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth != "Bearer key-1" {
		t.Fatalf("expected bearer header, got %q", auth)
	}
	if got.Text != "I miss my dad" || got.ConversationHistory == nil {
		t.Fatalf("unexpected request body %+v", got)
	}
	if reply.Text != "That sounds heavy." || reply.Emotion.Type != "sadness" || reply.Emotion.Intensity != "high" {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if len(reply.Emotion.Topics) != 1 || reply.Emotion.Topics[0] != "family" {
		t.Fatalf("unexpected topics %v", reply.Emotion.Topics)
	}
}

func TestHTTPResponder_NumericIntensity(t *testing.T) {
	cases := []struct {
		intensity string
		want      string
	}{
		{`0.9`, "high"},
		{`0.5`, "medium"},
		{`"0.1"`, "low"},
		{`"HIGH"`, "high"},
		{`null`, "medium"},
		{`1.7`, "high"},
		{`-0.2`, "low"},
		{`"extreme"`, "medium"},
		{`{"level":3}`, "medium"},
	}
	for _, tc := range cases {
		t.Run(tc.intensity, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"text":"ok","emotion":{"type":"stress","intensity":` + tc.intensity + `,"confidence":0.5,"topics":[]},"language":"en-US"}`))
			}))
			defer srv.Close()

			reply, err := NewHTTPResponder(srv.URL, "", nil, nil).Respond(context.Background(), HostedRequest{Text: "x"})
			if err != nil {
				t.Fatalf("unusable intensity must not discard the reply: %v", err)
			}
			if reply.Text != "ok" || reply.Emotion.Intensity != tc.want {
				t.Fatalf("expected text kept with %s, got %+v", tc.want, reply)
			}
		})
	}
}

func TestHTTPResponder_Errors(t *testing.T) {
	t.Run("error status with body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"model overloaded"}`))
		}))
		defer srv.Close()

		_, err := NewHTTPResponder(srv.URL, "", nil, nil).Respond(context.Background(), HostedRequest{Text: "x"})
		if err == nil || !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "model overloaded") {
			t.Fatalf("expected status and message in error, got %v", err)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"text":"  ","emotion":{"type":"stress"}}`))
		}))
		defer srv.Close()

		_, err := NewHTTPResponder(srv.URL, "", nil, nil).Respond(context.Background(), HostedRequest{Text: "x"})
		if !errors.Is(err, ErrEmptyReply) {
			t.Fatalf("expected ErrEmptyReply, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := NewHTTPResponder(" ", "", nil, nil).Respond(context.Background(), HostedRequest{Text: "x"})
		if !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("context canceled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := NewHTTPResponder(srv.URL, "", nil, nil).Respond(ctx, HostedRequest{Text: "x"}); err == nil {
			t.Fatalf("expected error for canceled context")
		}
	})
}
