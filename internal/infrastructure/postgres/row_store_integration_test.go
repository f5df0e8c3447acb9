//go:build integration

package postgres_test

/*
	Para rodar: go test -tags=integration -v ./internal/infrastructure/postgres -count=1
*/

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/postgres"
	"github.com/jhoicas/cadastro-funcionarios/pkg/config"
)

func newRowStore(t *testing.T) *postgres.RowStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("cadastro"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "subir postgres")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := postgres.NewRowStore(pool, "funcionarios")
	require.NoError(t, store.EnsureSchema(ctx))
	require.NoError(t, store.EnsureSchema(ctx), "idempotente")
	return store
}

func TestRowStore_Posicional(t *testing.T) {
	store := newRowStore(t)
	ctx := context.Background()

	rows, err := store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	for _, r := range [][]string{{"cabecalho"}, {"a"}, {"b"}, {"c"}} {
		require.NoError(t, store.AppendRow(ctx, r))
	}
	require.NoError(t, store.UpdateRowRange(ctx, 3, []string{"B", ""}))

	rows, err = store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"cabecalho"}, {"a"}, {"B", ""}, {"c"}}, rows)

	// Excluir a linha 2 sobe as seguintes.
	require.NoError(t, store.DeleteRow(ctx, 2))
	rows, err = store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"cabecalho"}, {"B", ""}, {"c"}}, rows)

	require.NoError(t, store.AppendRow(ctx, []string{"d"}))
	rows, err = store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, rows[3])
}

func TestRowStore_LinhaInexistente(t *testing.T) {
	store := newRowStore(t)
	ctx := context.Background()
	require.NoError(t, store.AppendRow(ctx, []string{"cabecalho"}))

	assert.Error(t, store.UpdateRowRange(ctx, 5, []string{"x"}))
	assert.Error(t, store.DeleteRow(ctx, 5))
}

func TestRowStore_AppendsConcorrentes(t *testing.T) {
	store := newRowStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.AppendRow(ctx, []string{"x"}))
		}()
	}
	wg.Wait()

	rows, err := store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 20)
}
