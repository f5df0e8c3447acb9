package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
	"github.com/jhoicas/cadastro-funcionarios/pkg/jwt"
)

// Credentials usuário e senha do administrador, vindos da configuração.
type Credentials struct {
	Username string
	Password string
}

// TokenConfig configuração do token de sessão.
type TokenConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login, logout e resolução de sessões administrativas.
type AuthUseCase struct {
	sessions repository.SessionRepository
	admin    Credentials
	tokenCfg TokenConfig
	now      func() time.Time
}

// NewAuthUseCase constrói o caso de uso de autenticação.
func NewAuthUseCase(sessions repository.SessionRepository, admin Credentials, tokenCfg TokenConfig) *AuthUseCase {
	return &AuthUseCase{sessions: sessions, admin: admin, tokenCfg: tokenCfg, now: time.Now}
}

// Login compara usuário e senha por igualdade exata e cria uma sessão.
// Sem credenciais configuradas ninguém entra.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.admin.Username == "" || uc.admin.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Username != uc.admin.Username || in.Password != uc.admin.Password {
		return nil, domain.ErrUnauthorized
	}
	now := uc.now()
	sess := &entity.Session{
		ID:            uuid.NewString(),
		Username:      in.Username,
		Authenticated: true,
		CreatedAt:     now,
		ExpiresAt:     now.Add(time.Duration(uc.tokenCfg.ExpMinutes) * time.Minute),
	}
	if err := uc.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("auth: criar sessão: %w", err)
	}
	token, err := jwt.Generate(uc.tokenCfg.Secret, sess.ID, sess.Username, uc.tokenCfg.Issuer, uc.tokenCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, sess.ID)
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: sess.Username, ExpiresAt: sess.ExpiresAt}, nil
}

// Resolve transforma o token em sessão. Token inválido, sessão encerrada ou expirada
// resultam em domain.ErrUnauthorized.
func (uc *AuthUseCase) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	sessionID, _, err := jwt.Parse(uc.tokenCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	sess, err := uc.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("auth: obter sessão: %w", err)
	}
	if !sess.Authorized(uc.now()) {
		return nil, domain.ErrUnauthorized
	}
	return sess, nil
}

// Logout encerra a sessão; tokens que a referenciam deixam de valer.
func (uc *AuthUseCase) Logout(ctx context.Context, sess *entity.Session) error {
	if sess == nil {
		return domain.ErrUnauthorized
	}
	return uc.sessions.Delete(ctx, sess.ID)
}
