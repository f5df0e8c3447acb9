package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/auth"
	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
	domainemp "github.com/jhoicas/cadastro-funcionarios/internal/domain/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/entity"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/memory"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/cadastro-funcionarios/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testAdminUser = "rh"
	testAdminPass = "s3nha-forte"
)

type fakePDF struct{}

func (fakePDF) GenerateEmployeeSheet(e *entity.Employee, _ time.Time) ([]byte, error) {
	return []byte("%PDF-1.3 " + e.FullName), nil
}

type testEnv struct {
	app     *fiber.App
	store   *memory.RowStore
	metrics *metrics.Metrics
}

// newTestEnv monta a API completa sobre adaptadores em memória.
func newTestEnv(t *testing.T, rateLimit int, rows ...[]string) *testEnv {
	t.Helper()
	store := memory.NewRowStore(rows...)
	m := metrics.New()
	instrumented := m.InstrumentStore(store)
	opts := employee.Options{Recorder: m}
	locator := domainemp.NewNaturalKeyLocator(instrumented)

	authUC := auth.NewAuthUseCase(memory.NewSessionStore(),
		auth.Credentials{Username: testAdminUser, Password: testAdminPass},
		auth.TokenConfig{Secret: "test-secret", ExpMinutes: 30, Issuer: "cadastro-test"})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:          authUC,
		RegisterUC:      employee.NewRegisterUseCase(instrumented, opts),
		ManageUC:        employee.NewManageUseCase(instrumented, locator, opts),
		QueryUC:         employee.NewQueryUseCase(instrumented, locator, fakePDF{}, opts),
		Metrics:         m.Handler(),
		PublicRateLimit: rateLimit,
	})
	return &testEnv{app: app, store: store, metrics: m}
}

// do envia a requisição com corpo JSON opcional e token opcional.
func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login devolve um token de sessão válido.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: testAdminUser, Password: testAdminPass}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func validForm() dto.EmployeeDTO {
	return dto.EmployeeDTO{
		FullName:        "Ana Silva",
		CPF:             "52998224725",
		Address:         "Rua das Flores, 10",
		Email:           "ana@empresa.com.br",
		Phone:           "+55 11 98765-4321",
		Age:             34,
		BirthDate:       "12/03/1992",
		Directorate:     "Diretoria de Tecnologia",
		BloodType:       "A+",
		MaritalStatus:   "Casado(a)",
		SpouseName:      "Carla",
		SpouseAge:       33,
		HasChildren:     entity.AnswerYes,
		ChildrenCount:   2,
		Emergency1Name:  "Carla",
		Emergency1Phone: "11912345678",
	}
}

func seededRow(name, cpf string) []string {
	return domainemp.ToRow(&entity.Employee{
		CreatedAt: "01/02/2025 09:00:00", FullName: name, CPF: cpf, Email: "x@y.com",
		Age: 30, Directorate: "Diretoria Financeira",
		HasComorbidity: entity.AnswerNo, HasHealthPlan: entity.AnswerNo, HasChildren: entity.AnswerNo,
	})
}
