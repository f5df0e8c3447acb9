package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/auth"
	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
	domainemp "github.com/jhoicas/cadastro-funcionarios/internal/domain/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/broker"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/memory"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/pdf"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/redis"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/cadastro-funcionarios/internal/interfaces/http"
	"github.com/jhoicas/cadastro-funcionarios/pkg/config"
	"github.com/jhoicas/cadastro-funcionarios/pkg/logger"
)

// publicRateLimit requisições por minuto e IP em login e cadastro.
const publicRateLimit = 30

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicação")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("fuso horário inválido")
	}
	if cfg.Admin.User == "" || cfg.Admin.Password == "" {
		log.Warn().Msg("ADMIN_USER/ADMIN_PASSWORD não definidos: área administrativa bloqueada")
	}

	if cfg.Session.Secret == "" {
		// Segredo efêmero: tokens deixam de valer a cada reinício.
		cfg.Session.Secret = uuid.NewString() + uuid.NewString()
		log.Warn().Msg("SESSION_SECRET não definido: usando segredo aleatório")
	}

	ctx := context.Background()
	m := metrics.New()

	// Planilha: Google Sheets, PostgreSQL ou memória.
	var store repository.RecordStore
	switch cfg.Store.Driver {
	case config.StoreSheets:
		s, err := sheets.NewStore(ctx, cfg.Sheets, domainemp.ColumnCount)
		if err != nil {
			log.Fatal().Err(err).Msg("Google Sheets")
		}
		store = s
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão a PostgreSQL")
		}
		defer pool.Close()
		s := postgres.NewRowStore(pool, cfg.DB.SheetName)
		if err := s.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("schema PostgreSQL")
		}
		store = s
	default:
		log.Warn().Msg("STORE_DRIVER=memory: os cadastros não sobrevivem ao reinício")
		store = memory.NewRowStore()
	}
	store = m.InstrumentStore(store)

	// Sessões: Redis quando configurado, senão memória do processo.
	var sessions repository.SessionRepository = memory.NewSessionStore()
	var redisClient *infraredis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = infraredis.New(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão a Redis")
		}
		defer redisClient.Close()
		sessions = infraredis.NewSessionStore(redisClient.Client)
	}

	// Eventos: RabbitMQ quando configurado, senão descartados.
	var publisher employee.EventPublisher
	if cfg.Broker.URL != "" {
		pub, err := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão a RabbitMQ")
		}
		defer pub.Close()
		publisher = pub
	}

	opts := employee.Options{
		Publisher: publisher,
		Recorder:  m,
		Logger:    log.Component("employee"),
		Location:  loc,
	}
	locator := domainemp.NewNaturalKeyLocator(store)
	registerUC := employee.NewRegisterUseCase(store, opts)
	manageUC := employee.NewManageUseCase(store, locator, opts)
	queryUC := employee.NewQueryUseCase(store, locator, infrapdf.NewMarotoPDFGenerator(cfg.App.Name), opts)
	authUC := auth.NewAuthUseCase(sessions,
		auth.Credentials{Username: cfg.Admin.User, Password: cfg.Admin.Password},
		auth.TokenConfig{Secret: cfg.Session.Secret, ExpMinutes: cfg.Session.Expiration, Issuer: cfg.Session.Issuer},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Sheets.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cadastro de Funcionários API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver}
		if redisClient != nil {
			if err := redisClient.Health(c.UserContext()); err != nil {
				status["status"] = "degraded"
				status["redis"] = err.Error()
				return c.Status(fiber.StatusServiceUnavailable).JSON(status)
			}
		}
		return c.JSON(status)
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		RegisterUC:      registerUC,
		ManageUC:        manageUC,
		QueryUC:         queryUC,
		Metrics:         m.Handler(),
		PublicRateLimit: publicRateLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
