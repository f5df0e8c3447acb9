// import_legacy carrega na planilha uma exportação CSV antiga do cadastro de funcionários.
//
// Uso: go run ./cmd/import_legacy [--encoding auto|latin1|utf8] [--sep ,] [--dry-run] arquivo.csv
//
// O destino segue STORE_DRIVER (sheets ou postgres). O cabeçalho da planilha é criado se
// ela estiver vazia; linhas inválidas são listadas e ignoradas.
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
	domainemp "github.com/jhoicas/cadastro-funcionarios/internal/domain/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/postgres"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/sheets"
	"github.com/jhoicas/cadastro-funcionarios/pkg/config"
	"github.com/jhoicas/cadastro-funcionarios/pkg/logger"
)

func main() {
	encoding := pflag.StringP("encoding", "e", "auto", "codificação do arquivo: auto, latin1 ou utf8")
	sep := pflag.StringP("sep", "s", ",", "separador de campos")
	dryRun := pflag.Bool("dry-run", false, "valida sem gravar")
	pflag.Parse()
	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_legacy [flags] arquivo.csv")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	header, records, err := readCSV(pflag.Arg(0), *encoding, *sep)
	if err != nil {
		log.Fatal().Err(err).Str("file", pflag.Arg(0)).Msg("ler CSV")
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir planilha")
	}
	defer closeStore()

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("fuso horário inválido")
	}
	uc := employee.NewImportUseCase(store, employee.Options{Logger: log, Location: loc})
	report, err := uc.Import(ctx, header, records, *dryRun)
	if err != nil {
		log.Fatal().Err(err).Msg("importação interrompida")
	}

	for _, r := range report.Rejected {
		fmt.Printf("linha %d recusada:\n", r.Line)
		for _, m := range r.Messages {
			fmt.Printf("  - %s\n", m)
		}
	}
	fmt.Printf("Importados: %d, recusados: %d\n", report.Imported, len(report.Rejected))
}

// readCSV decodifica o arquivo (Latin-1 quando não for UTF-8 válido no modo auto).
func readCSV(path, encoding, sep string) ([]string, [][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var r io.Reader = bytes.NewReader(raw)
	switch encoding {
	case "latin1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "utf8":
	case "auto":
		if !utf8.Valid(raw) {
			r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
		}
	default:
		return nil, nil, fmt.Errorf("codificação desconhecida %q", encoding)
	}

	cr := csv.NewReader(r)
	if s := []rune(sep); len(s) == 1 {
		cr.Comma = s[0]
	}
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("arquivo vazio")
	}
	return all[0], all[1:], nil
}

func openStore(ctx context.Context, cfg *config.Config) (repository.RecordStore, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreSheets:
		s, err := sheets.NewStore(ctx, cfg.Sheets, domainemp.ColumnCount)
		return s, func() {}, err
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		s := postgres.NewRowStore(pool, cfg.DB.SheetName)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return s, pool.Close, nil
	}
	return nil, nil, fmt.Errorf("STORE_DRIVER=%s não persiste; use sheets ou postgres", cfg.Store.Driver)
}
