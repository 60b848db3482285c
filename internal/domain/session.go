package domain

import "time"

type Session struct {
	ID        string    `json:"id"`
	Locale    string    `json:"locale"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionSnapshot es lo que se guarda para restaurar una sesion tras un reinicio.
type SessionSnapshot struct {
	Session   Session `json:"session"`
	TurnCount int     `json:"turn_count"`
	History   []Turn  `json:"history"`
}
