// Package memory implementa as portas de persistência em memória, para desenvolvimento
// local (STORE_DRIVER=memory) e testes.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
)

// RowStore guarda a planilha como uma matriz de strings.
type RowStore struct {
	mu   sync.RWMutex
	rows [][]string
}

var _ repository.RecordStore = (*RowStore)(nil)

// NewRowStore cria o armazenamento com as linhas iniciais (a primeira é o cabeçalho).
func NewRowStore(rows ...[]string) *RowStore {
	s := &RowStore{}
	for _, r := range rows {
		s.rows = append(s.rows, clone(r))
	}
	return s
}

func (s *RowStore) ReadAllRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][]string, len(s.rows))
	for i, r := range s.rows {
		out[i] = clone(r)
	}
	return out, nil
}

func (s *RowStore) AppendRow(ctx context.Context, values []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, clone(values))
	return nil
}

func (s *RowStore) UpdateRowRange(ctx context.Context, row int, values []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if row < 1 || row > len(s.rows) {
		return fmt.Errorf("memory: linha %d fora do intervalo 1..%d", row, len(s.rows))
	}
	s.rows[row-1] = clone(values)
	return nil
}

func (s *RowStore) DeleteRow(ctx context.Context, row int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if row < 1 || row > len(s.rows) {
		return fmt.Errorf("memory: linha %d fora do intervalo 1..%d", row, len(s.rows))
	}
	s.rows = append(s.rows[:row-1], s.rows[row:]...)
	return nil
}

// Len devolve a quantidade de linhas, incluindo o cabeçalho.
func (s *RowStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func clone(r []string) []string {
	out := make([]string, len(r))
	copy(out, r)
	return out
}
