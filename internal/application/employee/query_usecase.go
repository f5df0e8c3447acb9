package employee

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	domainemp "github.com/jhoicas/cadastro-funcionarios/internal/domain/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
	"github.com/jhoicas/cadastro-funcionarios/pkg/brdoc"
)

// utf8BOM faz o Excel abrir o CSV como UTF-8.
const utf8BOM = "\xEF\xBB\xBF"

// QueryUseCase consulta, exportação CSV e ficha em PDF (área administrativa).
type QueryUseCase struct {
	store     repository.RecordStore
	locator   domainemp.Locator
	generator SheetPDFGenerator
	opts      Options
}

// NewQueryUseCase constrói o caso de uso. generator pode ser nil quando não há PDF.
func NewQueryUseCase(store repository.RecordStore, locator domainemp.Locator, generator SheetPDFGenerator, opts Options) *QueryUseCase {
	return &QueryUseCase{store: store, locator: locator, generator: generator, opts: opts.withDefaults()}
}

// List devolve a página da visão filtrada e ordenada.
func (uc *QueryUseCase) List(ctx context.Context, sess *entity.Session, q dto.EmployeeQuery) (*dto.EmployeeListResponse, error) {
	view, err := uc.view(ctx, sess, "list", q)
	if err != nil {
		return nil, err
	}
	q.DefaultPage()
	total := len(view)
	start := min(q.Offset, total)
	end := min(start+q.Limit, total)

	items := make([]dto.EmployeeDTO, 0, end-start)
	for _, e := range view[start:end] {
		items = append(items, toDTO(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// ExportCSV serializa a visão filtrada e ordenada inteira (sem paginação) em CSV UTF-8 com BOM,
// usando os cabeçalhos de exibição. Devolve o conteúdo e o nome do arquivo.
func (uc *QueryUseCase) ExportCSV(ctx context.Context, sess *entity.Session, q dto.EmployeeQuery) ([]byte, string, error) {
	view, err := uc.view(ctx, sess, "export", q)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(domainemp.Headers()); err != nil {
		return nil, "", fmt.Errorf("csv: cabeçalho: %w", err)
	}
	for _, e := range view {
		if err := w.Write(domainemp.ToRow(e)); err != nil {
			return nil, "", fmt.Errorf("csv: linha: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("csv: %w", err)
	}
	filename := "funcionarios_" + uc.opts.localNow().Format("20060102_150405") + ".csv"
	return buf.Bytes(), filename, nil
}

// EmployeeSheetPDF gera a ficha cadastral do registro localizado pela chave natural.
func (uc *QueryUseCase) EmployeeSheetPDF(ctx context.Context, sess *entity.Session, key dto.EmployeeKey) ([]byte, string, error) {
	const op = "sheet_pdf"
	if err := authorize(sess, uc.opts, op); err != nil {
		return nil, "", err
	}
	if uc.generator == nil {
		return nil, "", fmt.Errorf("%w: gerador de PDF não configurado", domain.ErrBackend)
	}
	m, err := uc.locator.Locate(ctx, domainemp.NaturalKey{Name: key.FullName, CPF: key.CPF})
	if err != nil {
		uc.opts.Recorder.RecordOperation(op, outcomeFor(err))
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateEmployeeSheet(m.Record, uc.opts.localNow())
	if err != nil {
		uc.opts.Recorder.RecordOperation(op, OutcomeError)
		return nil, "", fmt.Errorf("pdf: gerar ficha: %w", err)
	}
	uc.opts.Recorder.RecordOperation(op, OutcomeOK)
	return pdf, "ficha_" + brdoc.DigitsCPF(m.Record.CPF) + ".pdf", nil
}

func (uc *QueryUseCase) view(ctx context.Context, sess *entity.Session, op string, q dto.EmployeeQuery) ([]*entity.Employee, error) {
	if err := authorize(sess, uc.opts, op); err != nil {
		return nil, err
	}
	list, err := uc.readAll(ctx)
	if err != nil {
		uc.opts.Recorder.RecordOperation(op, OutcomeError)
		return nil, err
	}
	view := filter(list, q)
	if err := sortView(view, q.SortBy, q.Order); err != nil {
		uc.opts.Recorder.RecordOperation(op, OutcomeInvalid)
		return nil, err
	}
	uc.opts.Recorder.RecordOperation(op, OutcomeOK)
	return view, nil
}

// readAll lê e decodifica todas as linhas; linhas totalmente vazias são ignoradas.
func (uc *QueryUseCase) readAll(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := uc.store.ReadAllRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: ler planilha: %w", domain.ErrBackend, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := domainemp.VerifyHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackend, err)
	}
	out := make([]*entity.Employee, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		out = append(out, domainemp.FromRow(row))
	}
	return out, nil
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	}
	return OutcomeError
}
