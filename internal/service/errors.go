package service

import "errors"

var (
	// ErrEmptyUtterance es el unico error que un turno devuelve al llamador: uso indebido.
	ErrEmptyUtterance = errors.New("empty utterance")
	// ErrResponseGenerationFailed se registra cuando la generacion falla y se responde con la disculpa.
	ErrResponseGenerationFailed = errors.New("response generation failed")
	// ErrUpstreamUnavailable se registra cuando el colaborador alojado falla y responde el motor local.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrSessionNotFound     = errors.New("session not found")
	ErrRateLimited         = errors.New("turn rate limited")
)
