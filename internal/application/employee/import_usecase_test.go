package employee_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	domainemp "github.com/jhoicas/cadastro-funcionarios/internal/domain/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/memory"
)

func newImport(t *testing.T, store *memory.RowStore) *employee.ImportUseCase {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return employee.NewImportUseCase(store, employee.Options{
		Location: loc,
		Now:      func() time.Time { return fixedNow },
	})
}

var legacyHeader = []string{
	"\xEF\xBB\xBFNome Completo", "cpf", "E-MAIL", "Telefone", "Endereco", "Idade",
	"Data de Nascimento", "Diretoria", "Tipo Sanguíneo", "Estado Civil",
	"Contato Emergência 1 - Nome", "Contato Emergência 1 - Telefone", "Coluna Antiga",
}

func legacyLine(name, cpf string) []string {
	return []string{
		name, cpf, "ana@empresa.com.br", "11987654321", "Rua A, 1", "40",
		"01/01/1986", "Diretoria Financeira", "O+", "Solteiro(a)",
		"Bia", "11912345678", "ignorado",
	}
}

func TestImport_MapeiaCabecalhoEValida(t *testing.T) {
	store := memory.NewRowStore()
	uc := newImport(t, store)

	report, err := uc.Import(context.Background(), legacyHeader, [][]string{
		legacyLine("Ana Souza", "52998224725"),
		legacyLine("Sem CPF", "123"),
		legacyLine("Bruno Lima", "111.444.777-35"),
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, 3, report.Rejected[0].Line, "linha 3 do arquivo")
	assert.Contains(t, report.Rejected[0].Messages, domainemp.MsgInvalidCPF)

	rows, err := store.ReadAllRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, domainemp.Headers(), rows[0])

	ana := domainemp.FromRow(rows[1])
	assert.Equal(t, "529.982.247-25", ana.CPF)
	assert.Equal(t, "(11) 98765-4321", ana.Phone)
	assert.Equal(t, "Rua A, 1", ana.Address, "cabeçalho sem acento também casa")
	assert.Equal(t, "19/10/2026 10:45:07", ana.CreatedAt)
	assert.Equal(t, "Não", ana.HasChildren)
}

func TestImport_MantemDataDeCadastroDoArquivo(t *testing.T) {
	store := memory.NewRowStore()
	header := append([]string{"Data/Hora Cadastro"}, legacyHeader...)
	line := append([]string{"05/05/2020 08:00:00"}, legacyLine("Ana Souza", "52998224725")...)

	report, err := newImport(t, store).Import(context.Background(), header, [][]string{line}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)

	rows, err := store.ReadAllRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "05/05/2020 08:00:00", rows[1][domainemp.ColCreatedAt])
}

func TestImport_DryRunNaoEscreve(t *testing.T) {
	store := memory.NewRowStore()
	report, err := newImport(t, store).Import(context.Background(), legacyHeader,
		[][]string{legacyLine("Ana Souza", "52998224725")}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 0, store.Len())
}

func TestImport_CabecalhoSemColunasObrigatorias(t *testing.T) {
	_, err := newImport(t, memory.NewRowStore()).Import(context.Background(),
		[]string{"E-mail", "Telefone"}, nil, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImport_PlanilhaComCabecalhoDivergente(t *testing.T) {
	store := memory.NewRowStore([]string{"outra", "coisa"})
	_, err := newImport(t, store).Import(context.Background(), legacyHeader,
		[][]string{legacyLine("Ana Souza", "52998224725")}, false)
	assert.ErrorIs(t, err, domain.ErrBackend)
}
