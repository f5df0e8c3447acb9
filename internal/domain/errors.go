package domain

import (
	"errors"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("registro não encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrConfirmationRequired = errors.New("exclusão exige confirmação explícita")
	ErrBackend              = errors.New("falha no armazenamento de registros")
	ErrSchemaMismatch       = errors.New("cabeçalho da planilha não corresponde ao esquema")
)

// ValidationError agrupa todas as mensagens de validação de um envio.
// errors.Is(err, ErrInvalidInput) é verdadeiro para qualquer ValidationError.
type ValidationError struct {
	Messages []string
}

// NewValidationError devolve nil quando não há mensagens.
func NewValidationError(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

func (e *ValidationError) Error() string {
	return "dados inválidos: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
