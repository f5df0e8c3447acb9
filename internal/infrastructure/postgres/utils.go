package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUndefinedTable verifica se o erro é tabela inexistente (42P01).
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01" // undefined_table
	}
	return false
}

// wrap acrescenta a dica de migração quando a tabela ainda não foi criada.
func wrap(op string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s: tabela sheet_rows inexistente (rode EnsureSchema): %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
