package employee

import (
	"context"
	"fmt"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
	"github.com/jhoicas/cadastro-funcionarios/pkg/brdoc"
)

// NaturalKey é o par (nome completo, CPF) usado para achar um registro na planilha.
type NaturalKey struct {
	Name string
	CPF  string
}

// Match é a posição física (base 1, cabeçalho na linha 1) e o conteúdo do registro encontrado.
type Match struct {
	Row    int
	Record *entity.Employee
}

// Locator encontra a linha física de um registro. Edição e exclusão dependem só desta
// interface, para que a busca por chave natural possa ser trocada por busca por ID.
type Locator interface {
	Locate(ctx context.Context, key NaturalKey) (*Match, error)
}

// NaturalKeyLocator relê a planilha inteira e devolve a primeira linha cujo CPF e nome
// coincidem com a chave. Pares duplicados sempre resolvem para a primeira ocorrência.
type NaturalKeyLocator struct {
	store repository.RecordStore
}

var _ Locator = (*NaturalKeyLocator)(nil)

// NewNaturalKeyLocator constrói o localizador sobre o armazenamento de linhas.
func NewNaturalKeyLocator(store repository.RecordStore) *NaturalKeyLocator {
	return &NaturalKeyLocator{store: store}
}

// Locate devolve domain.ErrNotFound quando nenhuma linha coincide.
// O CPF é comparado na forma canônica; o nome, exatamente como gravado.
func (l *NaturalKeyLocator) Locate(ctx context.Context, key NaturalKey) (*Match, error) {
	rows, err := l.store.ReadAllRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: leitura da planilha: %w", domain.ErrBackend, err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	if err := VerifyHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackend, err)
	}
	cpf := brdoc.FormatCPF(key.CPF)
	for i, row := range rows[1:] {
		if brdoc.FormatCPF(Cell(row, ColCPF)) == cpf && Cell(row, ColFullName) == key.Name {
			return &Match{Row: i + 2, Record: FromRow(row)}, nil
		}
	}
	return nil, domain.ErrNotFound
}
