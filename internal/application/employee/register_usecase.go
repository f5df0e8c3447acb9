package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	domainemp "github.com/jhoicas/cadastro-funcionarios/internal/domain/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
)

// RegisterUseCase cadastro público de funcionários (não exige sessão).
type RegisterUseCase struct {
	store repository.RecordStore
	opts  Options
}

// NewRegisterUseCase constrói o caso de uso.
func NewRegisterUseCase(store repository.RecordStore, opts Options) *RegisterUseCase {
	return &RegisterUseCase{store: store, opts: opts.withDefaults()}
}

// Register valida o formulário completo, normaliza CPF e telefones, carimba a data/hora
// de São Paulo e acrescenta uma linha à planilha. Escreve o cabeçalho se a planilha estiver vazia.
//
// Retorna:
//   - *domain.ValidationError com todas as mensagens, sem escrever nada.
//   - erro envolvendo domain.ErrBackend se a planilha falhar.
func (uc *RegisterUseCase) Register(ctx context.Context, in dto.EmployeeDTO) (*dto.EmployeeDTO, error) {
	const op = "register"
	e := toEntity(in)
	domainemp.ApplyDefaults(e)
	if err := domainemp.ValidateCreate(e); err != nil {
		uc.opts.Recorder.RecordOperation(op, OutcomeInvalid)
		return nil, err
	}
	domainemp.NormalizeCreate(e)
	now := uc.opts.localNow()
	e.CreatedAt = now.Format(domainemp.CreatedAtLayout)

	if err := ensureHeader(ctx, uc.store); err != nil {
		uc.opts.Recorder.RecordOperation(op, OutcomeError)
		return nil, err
	}
	if err := uc.store.AppendRow(ctx, domainemp.ToRow(e)); err != nil {
		uc.opts.Recorder.RecordOperation(op, OutcomeError)
		uc.opts.Logger.Error().Err(err).Msg("falha ao gravar cadastro na planilha")
		return nil, fmt.Errorf("%w: gravar cadastro: %w", domain.ErrBackend, err)
	}
	uc.opts.Recorder.RecordOperation(op, OutcomeOK)
	uc.opts.Logger.Info().Str("directorate", e.Directorate).Msg("funcionário cadastrado")

	publish(ctx, uc.opts, Event{
		ID:         uuid.NewString(),
		Action:     ActionCreated,
		FullName:   e.FullName,
		CPF:        e.CPF,
		OccurredAt: now,
	})
	out := toDTO(e)
	return &out, nil
}

// ensureHeader escreve o cabeçalho numa planilha vazia ou confere o existente.
func ensureHeader(ctx context.Context, store repository.RecordStore) error {
	rows, err := store.ReadAllRows(ctx)
	if err != nil {
		return fmt.Errorf("%w: ler cabeçalho: %w", domain.ErrBackend, err)
	}
	if len(rows) == 0 {
		if err := store.AppendRow(ctx, domainemp.Headers()); err != nil {
			return fmt.Errorf("%w: escrever cabeçalho: %w", domain.ErrBackend, err)
		}
		return nil
	}
	if err := domainemp.VerifyHeader(rows[0]); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBackend, err)
	}
	return nil
}

// publish registra, mas não propaga, falhas do broker. Cada falha conta em
// cadastro_operations_total{operation="publish",outcome="error"}.
func publish(ctx context.Context, opts Options, ev Event) {
	err := opts.Publisher.Publish(ctx, ev)
	if err == nil {
		return
	}
	opts.Recorder.RecordOperation("publish", OutcomeError)
	if !errors.Is(err, context.Canceled) {
		opts.Logger.Warn().Err(err).Str("action", ev.Action).Msg("falha ao publicar evento do cadastro")
	}
}
