package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SemHeader(t *testing.T) {
	env := newTestEnv(t, 0)
	resp := env.do(t, http.MethodGet, "/api/employees", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	env := newTestEnv(t, 0)
	for _, header := range []string{"Basic abc", "Bearer", "Bearer    ", "token-solto"} {
		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		req.Header.Set("Authorization", header)
		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
	}
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	env := newTestEnv(t, 0)
	resp := env.do(t, http.MethodGet, "/api/employees", nil, "nao.e.jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INVALID_SESSION", body.Code)
}

func TestAuthMiddleware_SessaoValida(t *testing.T) {
	env := newTestEnv(t, 0)
	token := env.login(t)
	resp := env.do(t, http.MethodGet, "/api/employees", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_CredenciaisErradas(t *testing.T) {
	env := newTestEnv(t, 0)
	resp := env.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: testAdminUser, Password: "errada"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_EncerraSessao(t *testing.T) {
	env := newTestEnv(t, 0)
	token := env.login(t)

	resp := env.do(t, http.MethodPost, "/api/auth/logout", nil, token)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/employees", nil, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token de sessão encerrada não vale mais")
}

func TestSessoesIndependentes(t *testing.T) {
	env := newTestEnv(t, 0)
	a := env.login(t)
	b := env.login(t)

	resp := env.do(t, http.MethodPost, "/api/auth/logout", nil, a)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/employees", nil, b)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
