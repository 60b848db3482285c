package lexicon

import (
	"strings"
	"testing"

	"hearmeout/internal/domain"
)

func TestDefaultStoreValidates(t *testing.T) {
	store := NewDefaultStore()
	if err := store.Validate(); err != nil {
		t.Fatalf("expected default lexicon to validate, got %v", err)
	}
}

func TestDefaultStoreTiersBelongToOwnCategory(t *testing.T) {
	store := NewDefaultStore()
	for _, e := range domain.Emotions() {
		cat, ok := store.LookupCategory(e)
		if !ok {
			t.Fatalf("missing category %s", e)
		}
		own := make(map[string]struct{}, len(cat.Keywords))
		for _, k := range cat.Keywords {
			own[k.Term] = struct{}{}
		}
		for term := range cat.Tiers {
			if _, ok := own[term]; !ok {
				t.Fatalf("category %s: tier term %q is not one of its keywords", e, term)
			}
		}
	}
}

func TestDefaultStoreWeights(t *testing.T) {
	store := NewDefaultStore()
	cat, _ := store.LookupCategory(domain.EmotionStress)
	for _, k := range cat.Keywords {
		if k.Kind != KindKeyword || k.Weight != KeywordWeight {
			t.Fatalf("unexpected keyword entry %+v", k)
		}
	}
	for _, p := range cat.Phrases {
		if p.Kind != KindPhrase || p.Weight != PhraseWeight {
			t.Fatalf("unexpected phrase entry %+v", p)
		}
	}
	if PhraseWeight <= KeywordWeight {
		t.Fatalf("expected phrases to weigh more than keywords")
	}
}

func TestLookupCategoryReturnsCopy(t *testing.T) {
	store := NewDefaultStore()
	cat, _ := store.LookupCategory(domain.EmotionSadness)
	cat.Keywords[0].Term = "mutated"
	cat.Tiers["mutated"] = domain.IntensityHigh

	again, _ := store.LookupCategory(domain.EmotionSadness)
	if again.Keywords[0].Term == "mutated" {
		t.Fatalf("expected keywords to be copied")
	}
	if _, ok := again.Tiers["mutated"]; ok {
		t.Fatalf("expected tiers to be copied")
	}
}

func TestLookupTopicsPriorityOrder(t *testing.T) {
	store := NewDefaultStore()
	topics := store.LookupTopics()
	if len(topics) == 0 {
		t.Fatalf("expected topics")
	}
	index := map[domain.Topic]int{}
	for i, tk := range topics {
		if tk.Topic == domain.TopicGeneral {
			t.Fatalf("general must not be an extractable topic")
		}
		index[tk.Topic] = i
	}
	if index[domain.TopicFinancial] > index[domain.TopicHealth] {
		t.Fatalf("expected financial to outrank health")
	}
	if index[domain.TopicWork] != 0 {
		t.Fatalf("expected work first, got index %d", index[domain.TopicWork])
	}
}

func TestNewStoreNormalizesTerms(t *testing.T) {
	store := NewStore(
		[]Category{{
			Emotion:  domain.EmotionAnger,
			Keywords: keywords("  FURIOUS "),
			Tiers:    tiers([]string{" Furious"}, nil, nil),
		}},
		[]TopicKeywords{{Topic: domain.TopicWork, Keywords: []string{" Boss ", ""}}},
		[]string{" Kill Myself "},
		[]string{"NOT GOOD"},
		map[domain.Intent][]string{domain.IntentGreeting: {"HOLA"}},
	)

	cat, ok := store.LookupCategory(domain.EmotionAnger)
	if !ok || cat.Keywords[0].Term != "furious" {
		t.Fatalf("expected lowercased keyword, got %+v", cat.Keywords)
	}
	if tier, ok := cat.TierOf("furious"); !ok || tier != domain.IntensityHigh {
		t.Fatalf("expected normalized tier, got %v %v", tier, ok)
	}
	if got := store.LookupTopics()[0].Keywords; len(got) != 1 || got[0] != "boss" {
		t.Fatalf("expected trimmed topic keywords, got %v", got)
	}
	if got := store.CrisisPhrases(); got[0] != "kill myself" {
		t.Fatalf("expected normalized crisis phrase, got %q", got[0])
	}
	if got := store.IntentPhrases(domain.IntentGreeting); got[0] != "hola" {
		t.Fatalf("expected normalized intent phrase, got %q", got[0])
	}
}

func TestValidateRejectsBadData(t *testing.T) {
	t.Run("missing category", func(t *testing.T) {
		store := NewStore(nil, nil, []string{"suicide"}, nil, nil)
		if err := store.Validate(); err == nil || !strings.Contains(err.Error(), "missing category") {
			t.Fatalf("expected missing category error, got %v", err)
		}
	})

	t.Run("tier outside own keywords", func(t *testing.T) {
		cats := defaultCategories()
		cats[0].Tiers["furious"] = domain.IntensityHigh
		store := NewStore(cats, defaultTopics(), defaultCrisisPhrases(), nil, defaultIntentPhrases())
		if err := store.Validate(); err == nil || !strings.Contains(err.Error(), "furious") {
			t.Fatalf("expected tier error, got %v", err)
		}
	})

	t.Run("empty crisis list", func(t *testing.T) {
		store := NewStore(defaultCategories(), defaultTopics(), nil, nil, defaultIntentPhrases())
		if err := store.Validate(); err == nil {
			t.Fatalf("expected crisis list error")
		}
	})

	t.Run("intent without phrases", func(t *testing.T) {
		intents := defaultIntentPhrases()
		delete(intents, domain.IntentGoodbye)
		store := NewStore(defaultCategories(), defaultTopics(), defaultCrisisPhrases(), nil, intents)
		if err := store.Validate(); err == nil || !strings.Contains(err.Error(), "goodbye") {
			t.Fatalf("expected intent error, got %v", err)
		}
	})
}
