package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cadastro-funcionarios/pkg/config"
)

func TestLoad_ValoresPadrao(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StoreMemory, cfg.Store.Driver)
	assert.Equal(t, "America/Sao_Paulo", cfg.App.Timezone)
	assert.Equal(t, 30*time.Second, cfg.Sheets.Timeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_LeVariaveisDeAmbiente(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ADMIN_USER", "rh")
	t.Setenv("ADMIN_PASSWORD", "segredo")
	t.Setenv("SESSION_TTL_MINUTES", "15")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StorePostgres, cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "rh", cfg.Admin.User)
	assert.Equal(t, "segredo", cfg.Admin.Password)
	assert.Equal(t, 15, cfg.Session.Expiration)
}

func TestLoad_SheetsExigePlanilhaECredenciais(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sheets")
	t.Setenv("GOOGLE_SHEET_ID", "")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("GOOGLE_SHEET_ID", "abc123")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "/tmp/sa.json")
	_, err = config.Load()
	assert.NoError(t, err)
}

func TestLoad_DriverDesconhecido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "excel")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "cadastro", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/cadastro?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x/y"
	assert.Equal(t, "postgres://x/y", c.ConnectionString())
}
