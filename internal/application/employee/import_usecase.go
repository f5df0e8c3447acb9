package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain"
	domainemp "github.com/jhoicas/cadastro-funcionarios/internal/domain/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
)

// ImportUseCase carrega cadastros de uma exportação antiga da planilha.
type ImportUseCase struct {
	store repository.RecordStore
	opts  Options
}

// ImportReport resume a importação. Line é a linha do arquivo (cabeçalho = 1).
type ImportReport struct {
	Imported int
	Rejected []RejectedLine
}

// RejectedLine linha recusada pela validação do cadastro.
type RejectedLine struct {
	Line     int
	Messages []string
}

// NewImportUseCase constrói o caso de uso.
func NewImportUseCase(store repository.RecordStore, opts Options) *ImportUseCase {
	return &ImportUseCase{store: store, opts: opts.withDefaults()}
}

// Import casa as colunas do arquivo com o esquema pelo cabeçalho de exibição ou pela chave
// (sem acento nem caixa), aplica as regras do cadastro e acrescenta as linhas válidas.
// Colunas desconhecidas são ignoradas; nome e CPF são obrigatórios no cabeçalho.
// Com dryRun nada é escrito.
func (uc *ImportUseCase) Import(ctx context.Context, header []string, records [][]string, dryRun bool) (*ImportReport, error) {
	mapping, err := mapHeader(header)
	if err != nil {
		return nil, err
	}
	if !dryRun {
		if err := ensureHeader(ctx, uc.store); err != nil {
			return nil, err
		}
	}

	report := &ImportReport{}
	now := uc.opts.localNow().Format(domainemp.CreatedAtLayout)
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		row := make([]string, domainemp.ColumnCount)
		for src, dst := range mapping {
			row[dst] = domainemp.Cell(rec, src)
		}
		e := domainemp.FromRow(row)
		domainemp.ApplyDefaults(e)
		if err := domainemp.ValidateCreate(e); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				report.Rejected = append(report.Rejected, RejectedLine{Line: i + 2, Messages: verr.Messages})
				continue
			}
			return report, err
		}
		domainemp.NormalizeCreate(e)
		if e.CreatedAt == "" {
			e.CreatedAt = now
		}
		if !dryRun {
			if err := uc.store.AppendRow(ctx, domainemp.ToRow(e)); err != nil {
				uc.opts.Recorder.RecordOperation("import", OutcomeError)
				return report, fmt.Errorf("%w: importar linha %d: %w", domain.ErrBackend, i+2, err)
			}
		}
		report.Imported++
	}
	uc.opts.Recorder.RecordOperation("import", OutcomeOK)
	uc.opts.Logger.Info().
		Int("imported", report.Imported).
		Int("rejected", len(report.Rejected)).
		Bool("dry_run", dryRun).
		Msg("importação concluída")
	return report, nil
}

// mapHeader devolve índice do arquivo → índice do esquema.
func mapHeader(header []string) (map[int]int, error) {
	known := make(map[string]int, domainemp.ColumnCount*2)
	for i, c := range domainemp.Schema {
		known[fold(c.Header)] = i
		known[fold(c.Key)] = i
	}
	mapping := make(map[int]int, len(header))
	seen := make(map[int]bool, len(header))
	for src, h := range header {
		dst, ok := known[fold(strings.TrimPrefix(h, utf8BOM))]
		if !ok || seen[dst] {
			continue
		}
		mapping[src] = dst
		seen[dst] = true
	}
	var msgs []string
	if !seen[domainemp.ColFullName] {
		msgs = append(msgs, "Coluna obrigatória ausente: "+domainemp.Schema[domainemp.ColFullName].Header)
	}
	if !seen[domainemp.ColCPF] {
		msgs = append(msgs, "Coluna obrigatória ausente: "+domainemp.Schema[domainemp.ColCPF].Header)
	}
	if err := domain.NewValidationError(msgs); err != nil {
		return nil, err
	}
	return mapping, nil
}
