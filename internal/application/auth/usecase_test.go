package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/auth"
	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/memory"
)

var tokenCfg = auth.TokenConfig{Secret: "test-secret", ExpMinutes: 30, Issuer: "cadastro-test"}

func newUseCase(admin auth.Credentials) (*auth.AuthUseCase, *memory.SessionStore) {
	store := memory.NewSessionStore()
	return auth.NewAuthUseCase(store, admin, tokenCfg), store
}

func TestLogin_CredenciaisCorretasCriamSessao(t *testing.T) {
	uc, _ := newUseCase(auth.Credentials{Username: "rh", Password: "s3nha"})
	ctx := context.Background()

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "rh", Password: "s3nha"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "rh", out.Username)

	sess, err := uc.Resolve(ctx, out.Token)
	require.NoError(t, err)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "rh", sess.Username)
}

func TestLogin_IgualdadeExata(t *testing.T) {
	uc, _ := newUseCase(auth.Credentials{Username: "rh", Password: "s3nha"})
	ctx := context.Background()

	for _, in := range []dto.LoginRequest{
		{Username: "RH", Password: "s3nha"},
		{Username: "rh", Password: "s3nha "},
		{Username: "rh", Password: ""},
	} {
		_, err := uc.Login(ctx, in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "%+v", in)
	}
}

func TestLogin_SemCredenciaisConfiguradas(t *testing.T) {
	uc, _ := newUseCase(auth.Credentials{})
	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_InvalidaToken(t *testing.T) {
	uc, _ := newUseCase(auth.Credentials{Username: "rh", Password: "s3nha"})
	ctx := context.Background()

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "rh", Password: "s3nha"})
	require.NoError(t, err)
	sess, err := uc.Resolve(ctx, out.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, sess))
	_, err = uc.Resolve(ctx, out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_TokenInvalido(t *testing.T) {
	uc, _ := newUseCase(auth.Credentials{Username: "rh", Password: "s3nha"})
	_, err := uc.Resolve(context.Background(), "nao.e.token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessoesSaoIndependentes(t *testing.T) {
	uc, _ := newUseCase(auth.Credentials{Username: "rh", Password: "s3nha"})
	ctx := context.Background()

	a, err := uc.Login(ctx, dto.LoginRequest{Username: "rh", Password: "s3nha"})
	require.NoError(t, err)
	b, err := uc.Login(ctx, dto.LoginRequest{Username: "rh", Password: "s3nha"})
	require.NoError(t, err)

	sa, err := uc.Resolve(ctx, a.Token)
	require.NoError(t, err)
	require.NoError(t, uc.Logout(ctx, sa))

	_, err = uc.Resolve(ctx, b.Token)
	assert.NoError(t, err, "logout de um cliente não afeta o outro")
}
