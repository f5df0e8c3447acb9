package repository

import "context"

// RecordStore define a porta da planilha usada como banco de dados.
// Índices de linha começam em 1; a linha 1 é o cabeçalho.
type RecordStore interface {
	ReadAllRows(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, values []string) error
	// UpdateRowRange sobrescreve todas as colunas da linha em uma única escrita.
	UpdateRowRange(ctx context.Context, row int, values []string) error
	DeleteRow(ctx context.Context, row int) error
}
