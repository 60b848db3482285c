package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAITranslator_Translate(t *testing.T) {
	t.Run("english short-circuits", func(t *testing.T) {
		tr := NewOpenAITranslator("k", "http://127.0.0.1:1/", "", nil)
		for _, lang := range []string{"", "en", "en-IN", "EN_us"} {
			got, err := tr.Translate(context.Background(), "hello", lang)
			if err != nil || got != "hello" {
				t.Fatalf("%q: expected passthrough, got %q,%v", lang, got, err)
			}
		}
	})

	t.Run("translates", func(t *testing.T) {
		var req map[string]any
		srv := newFakeChatServer(t, " Hola, ¿cómo estás? ", &req)
		tr := NewOpenAITranslator("k", srv.URL+"/", "", nil)

		got, err := tr.Translate(context.Background(), "Hi, how are you?", "es-ES")
		if err != nil || got != "Hola, ¿cómo estás?" {
			t.Fatalf("unexpected %q,%v", got, err)
		}
		if _, ok := req["response_format"]; ok {
			t.Fatalf("translation must not request structured output")
		}
	})

	t.Run("empty output keeps original", func(t *testing.T) {
		srv := newFakeChatServer(t, "  ", nil)
		got, err := NewOpenAITranslator("k", srv.URL+"/", "", nil).Translate(context.Background(), "Hi", "fr-FR")
		if err != nil || got != "Hi" {
			t.Fatalf("expected original text, got %q,%v", got, err)
		}
	})

	t.Run("upstream error keeps original", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()
		got, err := NewOpenAITranslator("k", srv.URL+"/", "", nil).Translate(context.Background(), "Hi", "fr-FR")
		if err == nil || got != "Hi" {
			t.Fatalf("expected error with original text, got %q,%v", got, err)
		}
	})
}
