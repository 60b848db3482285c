package service

import (
	"sort"
	"strings"
)

// canonicalLocale normaliza etiquetas como "hi_in" o "EN-us" a "hi-IN" / "en".
// Todas las variantes de ingles colapsan a "en".
func canonicalLocale(locale string) string {
	tag := strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if tag == "" {
		return defaultLocaleKey
	}
	parts := strings.SplitN(tag, "-", 2)
	lang := strings.ToLower(parts[0])
	if lang == "en" {
		return defaultLocaleKey
	}
	if len(parts) == 1 || parts[1] == "" {
		return lang
	}
	return lang + "-" + strings.ToUpper(parts[1])
}

func isEnglishLocale(locale string) bool {
	return canonicalLocale(locale) == defaultLocaleKey
}

// resolveLocaleKey busca la etiqueta exacta y, si no existe, otra region del mismo idioma.
func resolveLocaleKey[V any](locale string, table map[string]V) (string, bool) {
	key := canonicalLocale(locale)
	if _, ok := table[key]; ok {
		return key, true
	}
	lang, _, _ := strings.Cut(key, "-")
	candidates := make([]string, 0, len(table))
	for k := range table {
		if l, _, _ := strings.Cut(k, "-"); l == lang {
			candidates = append(candidates, k)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Strings(candidates)
	return candidates[0], true
}
