package service

import "math/rand"

// Randomizer elige indices para variar plantillas; en tests se fija.
type Randomizer interface {
	IntN(n int) int
}

type mathRandomizer struct{}

func (mathRandomizer) IntN(n int) int {
	return rand.Intn(n)
}

// NewRandomizer devuelve el generador por defecto respaldado por math/rand.
func NewRandomizer() Randomizer {
	return mathRandomizer{}
}

func pickOne(r Randomizer, options []string) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0]
	}
	i := r.IntN(len(options))
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}
