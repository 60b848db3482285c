package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var apostropheReplacer = strings.NewReplacer("\u2019", "'", "\u2018", "'")

// normalizeText baja a minusculas, recorta y unifica apostrofes tipograficos.
func normalizeText(text string) string {
	return apostropheReplacer.Replace(strings.ToLower(strings.TrimSpace(text)))
}

// containsTerm busca term en text exigiendo limite de palabra en ambos extremos,
// para que "mad" no coincida dentro de "made" ni "ty" dentro de "anxiety".
// Las escrituras sin espacios (han, kana, thai) no exigen limite.
func containsTerm(text, term string) bool {
	return indexTerm(text, term, true) >= 0
}

// containsWordPrefix exige limite solo al inicio: "rent" coincide con "rental"
// pero no con "parents".
func containsWordPrefix(text, term string) bool {
	return indexTerm(text, term, false) >= 0
}

func indexTerm(text, term string, boundaryAfter bool) int {
	if term == "" {
		return -1
	}
	offset := 0
	for {
		i := strings.Index(text[offset:], term)
		if i < 0 {
			return -1
		}
		start := offset + i
		end := start + len(term)
		if boundaryBefore(text, start, term) && (!boundaryAfter || boundaryAfterAt(text, end, term)) {
			return start
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

func boundaryBefore(text string, start int, term string) bool {
	if start == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	first, _ := utf8.DecodeRuneInString(term)
	if !isWordRune(first) || unspacedScript(first) {
		return true
	}
	return !isWordRune(prev)
}

func boundaryAfterAt(text string, end int, term string) bool {
	if end >= len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	last, _ := utf8.DecodeLastRuneInString(term)
	if !isWordRune(last) || unspacedScript(last) {
		return true
	}
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func unspacedScript(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Thai)
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

// stripTerm borra cada aparicion de term con limite de palabra.
func stripTerm(text, term string) string {
	for {
		i := indexTerm(text, term, true)
		if i < 0 {
			return text
		}
		text = text[:i] + " " + text[i+len(term):]
	}
}
