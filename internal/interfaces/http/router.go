package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ast7/gestao-api/internal/application/analytics"
	"github.com/ast7/gestao-api/internal/application/auth"
	"github.com/ast7/gestao-api/internal/application/ledger"
	"github.com/ast7/gestao-api/internal/application/licensing"
	"github.com/ast7/gestao-api/internal/application/occurrence"
	"github.com/ast7/gestao-api/internal/application/reports"
	"github.com/ast7/gestao-api/internal/application/usecase"
	"github.com/ast7/gestao-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ClientUC     *usecase.ClientUseCase
	LicenseUC    *licensing.LicenseUseCase
	FeeUC        *usecase.MonthlyFeeUseCase
	OccurrenceUC *occurrence.UseCase
	FinancialUC  *ledger.UseCase
	SoftwareUC   *usecase.SoftwareUseCase
	ServiceUC    *usecase.ServiceUseCase
	SupplierUC   *usecase.SupplierUseCase
	CategoryUC   *usecase.ExpenseCategoryUseCase
	UserUC       *usecase.UserUseCase
	CompanyUC    *usecase.CompanyUseCase
	DashboardUC  *analytics.DashboardUseCase
	ReportUC     *reports.UseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; registro restrito a admin)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Clients (protegido) com licenças e mensalidades aninhadas
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Licenças (protegido)
	licenseHandler := NewLicenseHandler(deps.LicenseUC)
	clients.Post("/:id/licenses", licenseHandler.Sell)
	clients.Get("/:id/licenses", licenseHandler.ListByClient)
	licenses := protected.Group("/licenses")
	licenses.Put("/:id", licenseHandler.Update)
	licenses.Post("/:id/return", licenseHandler.Return)
	licenses.Delete("/:id", licenseHandler.Delete)

	// Mensalidades (protegido)
	feeHandler := NewFeeHandler(deps.FeeUC)
	clients.Post("/:id/fees", feeHandler.Create)
	clients.Get("/:id/fees", feeHandler.ListByClient)
	fees := protected.Group("/fees")
	fees.Put("/:id", feeHandler.Update)
	fees.Delete("/:id", feeHandler.Delete)

	// Ocorrências de suporte (protegido)
	occurrences := protected.Group("/occurrences")
	occurrenceHandler := NewOccurrenceHandler(deps.OccurrenceUC)
	occurrences.Post("/", occurrenceHandler.Create)
	occurrences.Get("/", occurrenceHandler.List)
	occurrences.Get("/:id", occurrenceHandler.GetByID)
	occurrences.Put("/:id", occurrenceHandler.Update)
	occurrences.Delete("/:id", occurrenceHandler.Delete)

	// Livro-caixa (protegido)
	entries := protected.Group("/financial-entries")
	financialHandler := NewFinancialHandler(deps.FinancialUC)
	entries.Post("/", financialHandler.Create)
	entries.Get("/", financialHandler.List)
	entries.Get("/:id", financialHandler.GetByID)
	entries.Put("/:id", financialHandler.Update)
	entries.Delete("/:id", financialHandler.Delete)

	// Catálogos (protegido)
	softwares := protected.Group("/softwares")
	softwareHandler := NewSoftwareHandler(deps.SoftwareUC)
	softwares.Post("/", softwareHandler.Create)
	softwares.Get("/", softwareHandler.List)
	softwares.Get("/:id", softwareHandler.GetByID)
	softwares.Put("/:id", softwareHandler.Update)
	softwares.Delete("/:id", softwareHandler.Delete)

	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	categories := protected.Group("/expense-categories")
	categoryHandler := NewExpenseCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Usuários (restrito a admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Dados da empresa (leitura geral; escrita restrita a admin)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", RequireRole(entity.RoleAdmin), companyHandler.Update)

	// Dashboard e relatórios (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/ledger", reportHandler.MonthlyLedger)
}
