package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	domainemp "github.com/jhoicas/cadastro-funcionarios/internal/domain/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
	"github.com/jhoicas/cadastro-funcionarios/pkg/brdoc"
)

// ManageUseCase edição e exclusão de registros pela área administrativa.
type ManageUseCase struct {
	store   repository.RecordStore
	locator domainemp.Locator
	opts    Options
}

// NewManageUseCase constrói o caso de uso. O localizador decide qual linha física é afetada.
func NewManageUseCase(store repository.RecordStore, locator domainemp.Locator, opts Options) *ManageUseCase {
	return &ManageUseCase{store: store, locator: locator, opts: opts.withDefaults()}
}

// Update sobrescreve a linha localizada pela chave original com o registro completo recebido.
// Só CPF e e-mail são validados; os demais campos são gravados como vieram.
// Data/hora de cadastro vazia mantém o valor da linha original.
func (uc *ManageUseCase) Update(ctx context.Context, sess *entity.Session, in dto.UpdateEmployeeRequest) (*dto.MutationResponse, error) {
	const op = "update"
	if err := authorize(sess, uc.opts, op); err != nil {
		return nil, err
	}
	e := toEntity(in.Employee)
	if err := domainemp.ValidateUpdate(e); err != nil {
		uc.opts.Recorder.RecordOperation(op, OutcomeInvalid)
		return nil, err
	}
	e.CPF = brdoc.FormatCPF(e.CPF)

	m, err := uc.locate(ctx, op, in.Original)
	if err != nil {
		return nil, err
	}
	if e.CreatedAt == "" {
		e.CreatedAt = m.Record.CreatedAt
	}
	if err := uc.store.UpdateRowRange(ctx, m.Row, domainemp.ToRow(e)); err != nil {
		uc.opts.Recorder.RecordOperation(op, OutcomeError)
		uc.opts.Logger.Error().Err(err).Int("row", m.Row).Msg("falha ao atualizar linha")
		return nil, fmt.Errorf("%w: atualizar linha %d: %w", domain.ErrBackend, m.Row, err)
	}
	uc.opts.Recorder.RecordOperation(op, OutcomeOK)
	uc.opts.Logger.Info().Int("row", m.Row).Str("user", sess.Username).Msg("registro atualizado")

	publish(ctx, uc.opts, Event{
		ID:         uuid.NewString(),
		Action:     ActionUpdated,
		FullName:   e.FullName,
		CPF:        e.CPF,
		Row:        m.Row,
		OccurredAt: uc.opts.localNow(),
	})
	return &dto.MutationResponse{Row: m.Row, Message: "Registro atualizado com sucesso"}, nil
}

// Delete remove a linha localizada. Exige in.Confirm; sem confirmação nada é lido nem escrito.
func (uc *ManageUseCase) Delete(ctx context.Context, sess *entity.Session, in dto.DeleteEmployeeRequest) (*dto.MutationResponse, error) {
	const op = "delete"
	if err := authorize(sess, uc.opts, op); err != nil {
		return nil, err
	}
	if !in.Confirm {
		uc.opts.Recorder.RecordOperation(op, OutcomeInvalid)
		return nil, domain.ErrConfirmationRequired
	}
	key := dto.EmployeeKey{FullName: in.FullName, CPF: in.CPF}
	m, err := uc.locate(ctx, op, key)
	if err != nil {
		return nil, err
	}
	if err := uc.store.DeleteRow(ctx, m.Row); err != nil {
		uc.opts.Recorder.RecordOperation(op, OutcomeError)
		uc.opts.Logger.Error().Err(err).Int("row", m.Row).Msg("falha ao excluir linha")
		return nil, fmt.Errorf("%w: excluir linha %d: %w", domain.ErrBackend, m.Row, err)
	}
	uc.opts.Recorder.RecordOperation(op, OutcomeOK)
	uc.opts.Logger.Info().Int("row", m.Row).Str("user", sess.Username).Msg("registro excluído")

	publish(ctx, uc.opts, Event{
		ID:         uuid.NewString(),
		Action:     ActionDeleted,
		FullName:   m.Record.FullName,
		CPF:        m.Record.CPF,
		Row:        m.Row,
		OccurredAt: uc.opts.localNow(),
	})
	return &dto.MutationResponse{Row: m.Row, Message: "Registro excluído com sucesso"}, nil
}

func (uc *ManageUseCase) locate(ctx context.Context, op string, key dto.EmployeeKey) (*domainemp.Match, error) {
	m, err := uc.locator.Locate(ctx, domainemp.NaturalKey{Name: key.FullName, CPF: key.CPF})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		uc.opts.Recorder.RecordOperation(op, OutcomeNotFound)
		return nil, err
	case err != nil:
		uc.opts.Recorder.RecordOperation(op, OutcomeError)
		return nil, err
	}
	return m, nil
}

func authorize(sess *entity.Session, opts Options, op string) error {
	if !sess.Authorized(opts.Now()) {
		opts.Recorder.RecordOperation(op, OutcomeUnauthorized)
		return domain.ErrUnauthorized
	}
	return nil
}
