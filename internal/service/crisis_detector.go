package service

import (
	"strings"

	"hearmeout/internal/lexicon"
)

// CrisisScanner detecta indicios de autolesion en el enunciado actual.
type CrisisScanner interface {
	IsCrisis(text string) bool
}

// CrisisDetector usa substring puro, sin limites de palabra: preferimos un falso positivo.
// Solo mira el enunciado actual, nunca el historial.
type CrisisDetector struct {
	phrases []string
}

func NewCrisisDetector(store *lexicon.Store) *CrisisDetector {
	return &CrisisDetector{phrases: store.CrisisPhrases()}
}

func (d *CrisisDetector) IsCrisis(text string) bool {
	norm := normalizeText(text)
	if norm == "" {
		return false
	}
	for _, p := range d.phrases {
		if strings.Contains(norm, p) {
			return true
		}
	}
	return false
}
