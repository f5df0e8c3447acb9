package http

import (
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/auth"
	"github.com/jhoicas/cadastro-funcionarios/internal/application/dto"
	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	RegisterUC *employee.RegisterUseCase
	ManageUC   *employee.ManageUseCase
	QueryUC    *employee.QueryUseCase
	// Metrics é servido em /metrics quando não nulo.
	Metrics nethttp.Handler
	// PublicRateLimit requisições por minuto e IP nas rotas públicas de escrita; zero desliga.
	PublicRateLimit int
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")
	authHandler := NewAuthHandler(deps.AuthUC)
	employeeHandler := NewEmployeeHandler(deps.RegisterUC, deps.ManageUC, deps.QueryUC)

	// Públicas
	public := []fiber.Handler{}
	if deps.PublicRateLimit > 0 {
		public = append(public, limiter.New(limiter.Config{
			Max:        deps.PublicRateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "muitas requisições, tente novamente em instantes"})
			},
		}))
	}
	api.Post("/auth/login", append(public, authHandler.Login)...)
	api.Post("/employees", append(public, employeeHandler.Register)...)
	api.Get("/options", employeeHandler.Options)

	// Área administrativa (Bearer Token de sessão)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Post("/auth/logout", authHandler.Logout)

	employees := protected.Group("/employees")
	employees.Get("/", employeeHandler.List)
	employees.Get("/export.csv", employeeHandler.ExportCSV)
	employees.Get("/sheet.pdf", employeeHandler.SheetPDF)
	employees.Put("/", employeeHandler.Update)
	employees.Delete("/", employeeHandler.Delete)
}
