package employee

import (
	"context"
	"time"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
)

// Ações publicadas após cada escrita bem-sucedida na planilha.
const (
	ActionCreated = "cadastro"
	ActionUpdated = "edição"
	ActionDeleted = "exclusão"
)

// Event notifica uma mudança no cadastro.
type Event struct {
	ID         string
	Action     string
	FullName   string
	CPF        string
	Row        int
	OccurredAt time.Time
}

// EventPublisher publica eventos do cadastro (RabbitMQ ou descarte).
// Falhas de publicação não desfazem a escrita já feita na planilha.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

// OperationRecorder registra o resultado de cada operação (métricas).
type OperationRecorder interface {
	RecordOperation(operation, outcome string)
}

// SheetPDFGenerator gera a ficha cadastral em PDF de um funcionário.
type SheetPDFGenerator interface {
	GenerateEmployeeSheet(e *entity.Employee, generatedAt time.Time) ([]byte, error)
}

// Resultados usados em OperationRecorder.
const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid"
	OutcomeNotFound     = "not_found"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

type nopRecorder struct{}

func (nopRecorder) RecordOperation(string, string) {}
