package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Vivienda-api/internal/application/auth"
	"github.com/jhoicas/Vivienda-api/internal/application/detail"
	"github.com/jhoicas/Vivienda-api/internal/application/matchsvc"
	"github.com/jhoicas/Vivienda-api/internal/application/reporting"
	"github.com/jhoicas/Vivienda-api/internal/application/usecase"
	"github.com/jhoicas/Vivienda-api/internal/application/viewmodel"
	"github.com/jhoicas/Vivienda-api/internal/infrastructure/cache"
	"github.com/jhoicas/Vivienda-api/internal/infrastructure/craxml"
	"github.com/jhoicas/Vivienda-api/internal/infrastructure/matching"
	infrapdf "github.com/jhoicas/Vivienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Vivienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Vivienda-api/internal/interfaces/http"
	"github.com/jhoicas/Vivienda-api/pkg/config"
	"github.com/jhoicas/Vivienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Redis es opcional: sin REDIS_ADDR la aplicación arranca sin caché y
	// el matching degrada a llamadas directas.
	var matchCache *cache.Cache
	if cfg.Redis.Addr != "" {
		matchCache, err = cache.New(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, arrancando sin caché")
			matchCache = nil
		} else {
			defer matchCache.Close()
		}
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	applicantRepo := postgres.NewApplicantRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	investmentRepo := postgres.NewInvestmentRepository(pool)
	craRepo := postgres.NewCRAMetricRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	applicantUC := usecase.NewApplicantUseCase(applicantRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	documentUC := usecase.NewDocumentUseCase(documentRepo)

	matchingClient := matching.NewClient(cfg.Matching.BaseURL, cfg.Matching.APIToken, cfg.Matching.CompanyKey)
	matchSvc := matchsvc.NewService(matchingClient, matchCache, log)

	loader := detail.NewLoader(applicationRepo, applicantRepo, projectRepo, companyRepo, log)
	transformer := viewmodel.NewTransformer(viewmodel.NewSynthesizer(time.Now().UnixNano()))
	applicationUC := usecase.NewApplicationUseCase(
		applicationRepo, userRepo, notificationRepo, loader, transformer, matchSvc, log,
	)

	reportingUC := reporting.NewUseCase(
		investmentRepo, craRepo, reportRepo, companyRepo,
		infrapdf.NewMarotoReportGenerator(), craxml.NewExporter(), log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Habitia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		ApplicantUC:    applicantUC,
		ProjectUC:      projectUC,
		ApplicationUC:  applicationUC,
		NotificationUC: notificationUC,
		DocumentUC:     documentUC,
		MatchSvc:       matchSvc,
		ReportingUC:    reportingUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
