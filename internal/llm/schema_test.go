package llm

import (
	"sort"
	"testing"
)

func TestCompanionReplySchema(t *testing.T) {
	s := companionReplySchema
	if s["type"] != "object" || s["additionalProperties"] != false {
		t.Fatalf("expected strict object schema, got %v", s)
	}
	if _, ok := s["$schema"]; ok {
		t.Fatalf("expected $schema stripped")
	}

	required, _ := s["required"].([]string)
	sort.Strings(required)
	want := []string{"confidence", "emotion", "intensity", "language", "response", "topics"}
	if len(required) != len(want) {
		t.Fatalf("expected all fields required, got %v", required)
	}
	for i := range want {
		if required[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, required)
		}
	}

	props := s["properties"].(map[string]any)
	emotion := props["emotion"].(map[string]any)
	enum, _ := emotion["enum"].([]any)
	if len(enum) != 6 {
		t.Fatalf("expected six emotion values, got %v", emotion["enum"])
	}
}

func TestCleanJSONReply(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"\uFEFF{\"a\":1}":          `{"a":1}`,
		"  ":                      "",
		"```\n{}\n```":            `{}`,
	}
	for in, want := range cases {
		if got := cleanJSONReply(in); got != want {
			t.Fatalf("cleanJSONReply(%q) = %q, want %q", in, got, want)
		}
	}
}
