package service

import (
	"strings"
	"unicode"
)

// langs son los idiomas que ya se escriben con esa escritura.
type scriptLanguage struct {
	table *unicode.RangeTable
	tag   string
	langs []string
}

// Kana va antes que los ideogramas: el japones mezcla kanji con hiragana y katakana.
var scriptLanguages = []scriptLanguage{
	{unicode.Devanagari, "hi-IN", []string{"hi", "mr", "ne", "sa"}},
	{unicode.Telugu, "te-IN", []string{"te"}},
	{unicode.Tamil, "ta-IN", []string{"ta"}},
	{unicode.Malayalam, "ml-IN", []string{"ml"}},
	{unicode.Kannada, "kn-IN", []string{"kn"}},
	{unicode.Bengali, "bn-IN", []string{"bn", "as"}},
	{unicode.Gujarati, "gu-IN", []string{"gu"}},
	{unicode.Gurmukhi, "pa-IN", []string{"pa"}},
	{unicode.Oriya, "or-IN", []string{"or"}},
	{unicode.Arabic, "ur-IN", []string{"ar", "ur", "fa", "ps", "sd"}},
	{unicode.Hiragana, "ja-JP", []string{"ja"}},
	{unicode.Katakana, "ja-JP", []string{"ja"}},
	{unicode.Hangul, "ko-KR", []string{"ko"}},
	{unicode.Han, "zh-CN", []string{"zh", "ja"}},
	{unicode.Cyrillic, "ru-RU", []string{"ru", "uk", "bg", "sr", "be", "kk", "mk"}},
}

// DetectLanguage adivina el idioma por escritura; sin coincidencias devuelve fallback.
func DetectLanguage(text, fallback string) string {
	if sl, ok := detectScript(text); ok {
		return sl.tag
	}
	return fallback
}

// TurnLocale decide el idioma de un turno sin idioma explicito. Devuelve "" para
// conservar el actual: solo cambia si la escritura no corresponde al idioma de la sesion,
// asi un texto arabe no pasa una sesion ar-SA a ur-IN.
func TurnLocale(current, text string) string {
	sl, ok := detectScript(text)
	if !ok {
		return ""
	}
	lang := localeLanguage(current)
	for _, l := range sl.langs {
		if l == lang {
			return ""
		}
	}
	return sl.tag
}

func detectScript(text string) (scriptLanguage, bool) {
	for _, sl := range scriptLanguages {
		for _, r := range text {
			if unicode.Is(sl.table, r) {
				return sl, true
			}
		}
	}
	return scriptLanguage{}, false
}

func localeLanguage(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}
