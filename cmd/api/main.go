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

	appanalytics "github.com/ast7/gestao-api/internal/application/analytics"
	"github.com/ast7/gestao-api/internal/application/auth"
	"github.com/ast7/gestao-api/internal/application/ledger"
	"github.com/ast7/gestao-api/internal/application/licensing"
	appoccurrence "github.com/ast7/gestao-api/internal/application/occurrence"
	"github.com/ast7/gestao-api/internal/application/reports"
	"github.com/ast7/gestao-api/internal/application/usecase"
	infrapdf "github.com/ast7/gestao-api/internal/infrastructure/pdf"
	"github.com/ast7/gestao-api/internal/infrastructure/postgres"
	httpRouter "github.com/ast7/gestao-api/internal/interfaces/http"
	"github.com/ast7/gestao-api/pkg/config"
	"github.com/ast7/gestao-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	clientRepo := postgres.NewClientRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	feeRepo := postgres.NewMonthlyFeeRepository(pool)
	occurrenceRepo := postgres.NewOccurrenceRepository(pool)
	entryRepo := postgres.NewFinancialEntryRepository(pool)
	softwareRepo := postgres.NewSoftwareRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewExpenseCategoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyInfoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, cfg.JWT, cfg.Company.EmailDomain)
	clientUC := usecase.NewClientUseCase(clientRepo, licenseRepo, feeRepo)
	licenseUC := licensing.NewLicenseUseCase(txRunner, clientRepo, softwareRepo, licenseRepo, entryRepo)
	feeUC := usecase.NewMonthlyFeeUseCase(feeRepo, clientRepo)
	occurrenceUC := appoccurrence.NewUseCase(occurrenceRepo, clientRepo)
	financialUC := ledger.NewUseCase(entryRepo, clientRepo, supplierRepo)
	softwareUC := usecase.NewSoftwareUseCase(softwareRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	categoryUC := usecase.NewExpenseCategoryUseCase(categoryRepo)
	userUC := usecase.NewUserUseCase(userRepo, cfg.Company.EmailDomain)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(clientRepo, entryRepo, occurrenceRepo)

	// PDF: livro-caixa mensal para download no dashboard
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewUseCase(entryRepo, companyRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AST7 Gestão API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClientUC:     clientUC,
		LicenseUC:    licenseUC,
		FeeUC:        feeUC,
		OccurrenceUC: occurrenceUC,
		FinancialUC:  financialUC,
		SoftwareUC:   softwareUC,
		ServiceUC:    serviceUC,
		SupplierUC:   supplierUC,
		CategoryUC:   categoryUC,
		UserUC:       userUC,
		CompanyUC:    companyUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
