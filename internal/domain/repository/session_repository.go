package repository

import (
	"context"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
)

// SessionRepository define a porta de persistência das sessões administrativas.
// Get devolve domain.ErrNotFound quando a sessão não existe ou já expirou.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
