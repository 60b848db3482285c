// Package lexicon contiene las tablas estaticas de palabras clave y frases que
// alimentan al clasificador, al extractor de temas, al detector de crisis y al
// reconocedor de intenciones rapidas. Se construye una vez y es de solo lectura.
package lexicon

import (
	"fmt"
	"strings"

	"hearmeout/internal/domain"
)

// Kind distingue una palabra aislada de una frase de varias palabras.
type Kind string

const (
	KindKeyword Kind = "keyword"
	KindPhrase  Kind = "phrase"
)

const (
	KeywordWeight = 3
	PhraseWeight  = 4
)

// Entry es un termino inmutable del lexico.
type Entry struct {
	Term   string
	Kind   Kind
	Weight int
}

// Category agrupa el lexico de una emocion.
type Category struct {
	Emotion  domain.Emotion
	Keywords []Entry
	Phrases  []Entry
	// Tiers asigna un nivel de intensidad a un subconjunto de Keywords.
	Tiers map[string]domain.Intensity
}

// TierOf devuelve el nivel asignado a la palabra clave, si lo tiene.
func (c Category) TierOf(term string) (domain.Intensity, bool) {
	tier, ok := c.Tiers[term]
	return tier, ok
}

// TopicKeywords son las palabras que activan un tema.
type TopicKeywords struct {
	Topic    domain.Topic
	Keywords []string
}

// Store expone el lexico completo. Los valores devueltos son copias.
type Store struct {
	categories        map[domain.Emotion]Category
	topics            []TopicKeywords
	crisis            []string
	negativeOverrides []string
	intents           map[domain.Intent][]string
}

// NewDefaultStore construye el lexico incluido en el binario.
func NewDefaultStore() *Store {
	return NewStore(defaultCategories(), defaultTopics(), defaultCrisisPhrases(), defaultNegativeOverrides(), defaultIntentPhrases())
}

// NewStore arma un Store a partir de tablas explicitas; normaliza todo a minusculas.
func NewStore(
	categories []Category,
	topics []TopicKeywords,
	crisis []string,
	negativeOverrides []string,
	intents map[domain.Intent][]string,
) *Store {
	s := &Store{
		categories:        make(map[domain.Emotion]Category, len(categories)),
		crisis:            lowerAll(crisis),
		negativeOverrides: lowerAll(negativeOverrides),
		intents:           make(map[domain.Intent][]string, len(intents)),
	}
	for _, c := range categories {
		s.categories[c.Emotion] = normalizeCategory(c)
	}
	for _, t := range topics {
		s.topics = append(s.topics, TopicKeywords{Topic: t.Topic, Keywords: lowerAll(t.Keywords)})
	}
	for intent, phrases := range intents {
		s.intents[intent] = lowerAll(phrases)
	}
	return s
}

// LookupCategory devuelve el lexico de la emocion.
func (s *Store) LookupCategory(e domain.Emotion) (Category, bool) {
	c, ok := s.categories[e]
	if !ok {
		return Category{}, false
	}
	out := Category{
		Emotion:  c.Emotion,
		Keywords: append([]Entry(nil), c.Keywords...),
		Phrases:  append([]Entry(nil), c.Phrases...),
		Tiers:    make(map[string]domain.Intensity, len(c.Tiers)),
	}
	for k, v := range c.Tiers {
		out.Tiers[k] = v
	}
	return out, true
}

// LookupTopics devuelve los temas en orden de prioridad.
func (s *Store) LookupTopics() []TopicKeywords {
	out := make([]TopicKeywords, 0, len(s.topics))
	for _, t := range s.topics {
		out = append(out, TopicKeywords{Topic: t.Topic, Keywords: append([]string(nil), t.Keywords...)})
	}
	return out
}

func (s *Store) CrisisPhrases() []string {
	return append([]string(nil), s.crisis...)
}

func (s *Store) NegativeOverrides() []string {
	return append([]string(nil), s.negativeOverrides...)
}

// IntentPhrases devuelve las frases de la intencion tal como estan escritas (sin transliterar).
func (s *Store) IntentPhrases(intent domain.Intent) []string {
	return append([]string(nil), s.intents[intent]...)
}

// Validate revisa invariantes de las tablas. Un error aqui es un defecto de datos.
func (s *Store) Validate() error {
	for _, e := range domain.Emotions() {
		c, ok := s.categories[e]
		if !ok {
			return fmt.Errorf("lexicon: missing category %s", e)
		}
		if len(c.Keywords) == 0 {
			return fmt.Errorf("lexicon: category %s has no keywords", e)
		}
		keywords := make(map[string]struct{}, len(c.Keywords))
		for _, k := range c.Keywords {
			if k.Kind != KindKeyword || k.Weight != KeywordWeight || k.Term == "" {
				return fmt.Errorf("lexicon: category %s has malformed keyword %q", e, k.Term)
			}
			keywords[k.Term] = struct{}{}
		}
		for _, p := range c.Phrases {
			if p.Kind != KindPhrase || p.Weight != PhraseWeight || p.Term == "" {
				return fmt.Errorf("lexicon: category %s has malformed phrase %q", e, p.Term)
			}
		}
		for term := range c.Tiers {
			if _, ok := keywords[term]; !ok {
				return fmt.Errorf("lexicon: category %s tier term %q is not one of its keywords", e, term)
			}
		}
	}
	if len(s.crisis) == 0 {
		return fmt.Errorf("lexicon: crisis phrase list is empty")
	}
	for _, intent := range domain.Intents() {
		if len(s.intents[intent]) == 0 {
			return fmt.Errorf("lexicon: intent %s has no phrases", intent)
		}
	}
	return nil
}

func normalizeCategory(c Category) Category {
	out := Category{Emotion: c.Emotion, Tiers: make(map[string]domain.Intensity, len(c.Tiers))}
	for _, k := range c.Keywords {
		k.Term = strings.ToLower(strings.TrimSpace(k.Term))
		out.Keywords = append(out.Keywords, k)
	}
	for _, p := range c.Phrases {
		p.Term = strings.ToLower(strings.TrimSpace(p.Term))
		out.Phrases = append(out.Phrases, p)
	}
	for term, tier := range c.Tiers {
		out.Tiers[strings.ToLower(strings.TrimSpace(term))] = tier
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func keywords(terms ...string) []Entry {
	out := make([]Entry, 0, len(terms))
	for _, t := range terms {
		out = append(out, Entry{Term: t, Kind: KindKeyword, Weight: KeywordWeight})
	}
	return out
}

func phrases(terms ...string) []Entry {
	out := make([]Entry, 0, len(terms))
	for _, t := range terms {
		out = append(out, Entry{Term: t, Kind: KindPhrase, Weight: PhraseWeight})
	}
	return out
}

func tiers(high, medium, low []string) map[string]domain.Intensity {
	out := make(map[string]domain.Intensity, len(high)+len(medium)+len(low))
	for _, t := range high {
		out[t] = domain.IntensityHigh
	}
	for _, t := range medium {
		out[t] = domain.IntensityMedium
	}
	for _, t := range low {
		out[t] = domain.IntensityLow
	}
	return out
}
