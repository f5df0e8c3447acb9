// Package sheets implementa o RecordStore sobre uma aba do Google Sheets,
// autenticando com conta de serviço.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
	"github.com/jhoicas/cadastro-funcionarios/pkg/config"
)

var _ repository.RecordStore = (*Store)(nil)

// Store lê e grava linhas de uma aba. Colunas além de columns são ignoradas.
type Store struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
	columns       int

	mu      sync.Mutex
	sheetID *int64 // id numérico da aba, necessário para excluir linhas
}

// Options parâmetros de NewStoreWithHTTP. BaseURL vazio usa o endpoint público.
type Options struct {
	HTTPClient    *http.Client
	BaseURL       string
	SpreadsheetID string
	SheetName     string
	Columns       int
}

// NewStore autentica pela conta de serviço descrita em cfg e devolve o adaptador.
func NewStore(ctx context.Context, cfg config.SheetsConfig, columns int) (*Store, error) {
	creds := []byte(cfg.CredentialsJSON)
	if len(creds) == 0 {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("sheets: ler credenciais: %w", err)
		}
		creds = data
	}
	jwtCfg, err := google.JWTConfigFromJSON(creds, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("sheets: credenciais inválidas: %w", err)
	}
	httpClient := jwtCfg.Client(ctx)
	httpClient.Timeout = cfg.Timeout
	return NewStoreWithHTTP(ctx, Options{
		HTTPClient:    httpClient,
		SpreadsheetID: cfg.SpreadsheetID,
		SheetName:     cfg.SheetName,
		Columns:       columns,
	})
}

// NewStoreWithHTTP usa um cliente HTTP já autenticado (ou um servidor de teste).
func NewStoreWithHTTP(ctx context.Context, o Options) (*Store, error) {
	if o.HTTPClient == nil {
		o.HTTPClient = http.DefaultClient
	}
	opts := []option.ClientOption{option.WithHTTPClient(o.HTTPClient)}
	if o.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(strings.TrimRight(o.BaseURL, "/")+"/"))
	}
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: criar serviço: %w", err)
	}
	return &Store{
		svc:           svc,
		spreadsheetID: o.SpreadsheetID,
		sheetName:     o.SheetName,
		columns:       o.Columns,
	}, nil
}

// ReadAllRows lê a aba inteira. O Sheets omite células vazias no fim de cada linha.
func (s *Store) ReadAllRows(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.a1("A:"+ColumnName(s.columns))).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: ler linhas: %w", err)
	}
	rows := make([][]string, len(resp.Values))
	for i, r := range resp.Values {
		rows[i] = make([]string, len(r))
		for j, v := range r {
			rows[i][j] = cellString(v)
		}
	}
	return rows, nil
}

// AppendRow acrescenta a linha após a última linha preenchida.
func (s *Store) AppendRow(ctx context.Context, values []string) error {
	rng := s.a1(fmt.Sprintf("A1:%s1", ColumnName(s.columns)))
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, rng, &sheetsapi.ValueRange{Values: [][]any{toAny(values)}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: acrescentar linha: %w", err)
	}
	return nil
}

// UpdateRowRange sobrescreve A{row}:{última}{row} em uma única chamada.
func (s *Store) UpdateRowRange(ctx context.Context, row int, values []string) error {
	if row < 1 {
		return fmt.Errorf("sheets: linha inválida %d", row)
	}
	rng := s.a1(fmt.Sprintf("A%d:%s%d", row, ColumnName(s.columns), row))
	body := &sheetsapi.ValueRange{Range: rng, MajorDimension: "ROWS", Values: [][]any{toAny(values)}}
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, rng, body).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: atualizar linha %d: %w", row, err)
	}
	return nil
}

// DeleteRow remove fisicamente a linha; as de baixo sobem uma posição.
func (s *Store) DeleteRow(ctx context.Context, row int) error {
	if row < 1 {
		return fmt.Errorf("sheets: linha inválida %d", row)
	}
	sheetID, err := s.lookupSheetID(ctx)
	if err != nil {
		return err
	}
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{Requests: []*sheetsapi.Request{{
		DeleteDimension: &sheetsapi.DeleteDimensionRequest{Range: &sheetsapi.DimensionRange{
			SheetId:    sheetID,
			Dimension:  "ROWS",
			StartIndex: int64(row - 1),
			EndIndex:   int64(row),
			// A primeira aba tem id 0 e a linha 1 começa no índice 0.
			ForceSendFields: []string{"SheetId", "StartIndex"},
		}},
	}}}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: excluir linha %d: %w", row, err)
	}
	return nil
}

// lookupSheetID consulta os metadados uma vez e guarda o id da aba.
func (s *Store) lookupSheetID(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sheetID != nil {
		return *s.sheetID, nil
	}
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("sheets: ler metadados: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == s.sheetName {
			id := sh.Properties.SheetId
			s.sheetID = &id
			return id, nil
		}
	}
	return 0, fmt.Errorf("sheets: aba %q não encontrada", s.sheetName)
}

// a1 prefixa o intervalo com o nome da aba entre aspas simples.
func (s *Store) a1(rng string) string {
	return "'" + strings.ReplaceAll(s.sheetName, "'", "''") + "'!" + rng
}

// ColumnName converte o número da coluna (base 1) na letra do A1: 1→A, 25→Y, 27→AA.
func ColumnName(n int) string {
	if n < 1 {
		n = 1
	}
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
