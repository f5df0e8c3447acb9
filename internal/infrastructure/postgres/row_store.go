// Package postgres guarda a planilha em uma tabela posicional (sheet, seq, cells),
// alternativa ao Google Sheets para ambientes sem acesso à API.
package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
)

var _ repository.RecordStore = (*RowStore)(nil)

//go:embed schema.sql
var schemaSQL string

// RowStore implementa RecordStore: a linha N da planilha é seq = N.
// Exclusões renumeram as linhas seguintes, como no Sheets.
type RowStore struct {
	pool  *pgxpool.Pool
	tx    *TxRunner
	sheet string
}

// NewRowStore constrói o adaptador para a planilha lógica sheet.
func NewRowStore(pool *pgxpool.Pool, sheet string) *RowStore {
	return &RowStore{pool: pool, tx: NewTxRunner(pool), sheet: sheet}
}

// EnsureSchema cria a tabela se ainda não existir.
func (s *RowStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("criar schema: %w", err)
	}
	return nil
}

func (s *RowStore) ReadAllRows(ctx context.Context) ([][]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT cells FROM sheet_rows WHERE sheet = $1 ORDER BY seq`, s.sheet)
	if err != nil {
		return nil, wrap("ler linhas", err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("scan linha: %w", err)
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ler linhas", err)
	}
	return out, nil
}

// AppendRow grava na posição seguinte à última sob lock da planilha.
func (s *RowStore) AppendRow(ctx context.Context, values []string) error {
	return s.tx.Run(ctx, func(q Querier) error {
		if err := s.lock(ctx, q); err != nil {
			return err
		}
		_, err := q.Exec(ctx, `
			INSERT INTO sheet_rows (sheet, seq, cells)
			SELECT $1, COALESCE(MAX(seq), 0) + 1, $2 FROM sheet_rows WHERE sheet = $1`,
			s.sheet, values)
		if err != nil {
			return wrap("inserir linha", err)
		}
		return nil
	})
}

// UpdateRowRange sobrescreve todas as células da linha em um único UPDATE.
func (s *RowStore) UpdateRowRange(ctx context.Context, row int, values []string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE sheet_rows SET cells = $3 WHERE sheet = $1 AND seq = $2`, s.sheet, row, values)
	if err != nil {
		return wrap("atualizar linha", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("atualizar linha: linha %d inexistente", row)
	}
	return nil
}

// DeleteRow remove a linha e sobe as seguintes uma posição, na mesma transação.
func (s *RowStore) DeleteRow(ctx context.Context, row int) error {
	return s.tx.Run(ctx, func(q Querier) error {
		if err := s.lock(ctx, q); err != nil {
			return err
		}
		tag, err := q.Exec(ctx, `DELETE FROM sheet_rows WHERE sheet = $1 AND seq = $2`, s.sheet, row)
		if err != nil {
			return wrap("excluir linha", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("excluir linha: linha %d inexistente", row)
		}
		if _, err := q.Exec(ctx,
			`UPDATE sheet_rows SET seq = seq - 1 WHERE sheet = $1 AND seq > $2`, s.sheet, row); err != nil {
			return wrap("renumerar linhas", err)
		}
		return nil
	})
}

// lock serializa escritas estruturais (append e delete) da mesma planilha.
func (s *RowStore) lock(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, s.sheet); err != nil {
		return fmt.Errorf("lock planilha: %w", err)
	}
	return nil
}
