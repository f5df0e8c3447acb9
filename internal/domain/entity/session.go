package entity

import "time"

// Session é a sessão administrativa criada no login. Substitui a antiga flag global
// de "admin autenticado": toda operação restrita recebe a sessão explicitamente.
type Session struct {
	ID            string
	Username      string
	Authenticated bool
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// Authorized informa se a sessão permite acesso à área restrita no instante now.
func (s *Session) Authorized(now time.Time) bool {
	if s == nil || !s.Authenticated {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}
