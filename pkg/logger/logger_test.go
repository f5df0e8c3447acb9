package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cadastro-funcionarios/pkg/logger"
)

func TestNew_JSONComComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf}).Component("employee")

	log.Info().Str("cpf", "***").Msg("cadastro criado")
	log.Debug().Msg("descartado pelo nível")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "employee", entry["component"])
	assert.Equal(t, "cadastro criado", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "verboso", Output: &buf})
	log.Debug().Msg("x")
	assert.Empty(t, buf.String())
	log.Warn().Msg("y")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("nada") })
}
