package metrics_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/memory"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/metrics"
)

func TestRecordOperation(t *testing.T) {
	m := metrics.New()
	m.RecordOperation("create", "ok")
	m.RecordOperation("create", "ok")
	m.RecordOperation("create", "invalid")

	n, err := testutil.GatherAndCount(m.Registry(), "cadastro_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "uma série por par (operação, resultado)")

	expected := `
# HELP cadastro_operations_total Operações do cadastro por tipo e resultado
# TYPE cadastro_operations_total counter
cadastro_operations_total{operation="create",outcome="invalid"} 1
cadastro_operations_total{operation="create",outcome="ok"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "cadastro_operations_total"))
}

// ─── InstrumentStore ────────────────────────────────────────────────────────

func TestInstrumentStore_DelegaEMedeFalhas(t *testing.T) {
	m := metrics.New()
	inner := memory.NewRowStore([]string{"h"})
	store := m.InstrumentStore(inner)
	ctx := context.Background()

	require.NoError(t, store.AppendRow(ctx, []string{"a"}))
	rows, err := store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	err = store.DeleteRow(ctx, 99)
	assert.Error(t, err)

	n, err := testutil.GatherAndCount(m.Registry(), "cadastro_store_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	expected := `
# HELP cadastro_store_errors_total Falhas nas chamadas ao armazenamento da planilha
# TYPE cadastro_store_errors_total counter
cadastro_store_errors_total{method="delete_row"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "cadastro_store_errors_total"))
}

func TestInstrumentStore_ContextoCancelado(t *testing.T) {
	m := metrics.New()
	store := m.InstrumentStore(memory.NewRowStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.ReadAllRows(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestHandler_ExpoeMetricas(t *testing.T) {
	m := metrics.New()
	m.RecordOperation("login", "unauthorized")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `cadastro_operations_total{operation="login",outcome="unauthorized"} 1`)
}
