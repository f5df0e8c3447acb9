package employee

import (
	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	domainemp "github.com/jhoicas/cadastro-funcionarios/internal/domain/employee"
)

// FormOptions devolve as listas fechadas do formulário e as colunas da planilha.
func FormOptions() dto.FormOptionsResponse {
	cols := make([]dto.Column, 0, domainemp.ColumnCount)
	for _, c := range domainemp.Schema {
		cols = append(cols, dto.Column{Key: c.Key, Header: c.Header})
	}
	return dto.FormOptionsResponse{
		Directorates:    append([]string(nil), domainemp.Directorates...),
		BloodTypes:      append([]string(nil), domainemp.BloodTypes...),
		MaritalStatuses: append([]string(nil), domainemp.MaritalStatuses...),
		Answers:         append([]string(nil), domainemp.Answers...),
		Columns:         cols,
	}
}
