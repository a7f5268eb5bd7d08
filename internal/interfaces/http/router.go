package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vivienda-api/internal/application/auth"
	"github.com/jhoicas/Vivienda-api/internal/application/matchsvc"
	"github.com/jhoicas/Vivienda-api/internal/application/reporting"
	"github.com/jhoicas/Vivienda-api/internal/application/usecase"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CompanyUC      *usecase.CompanyUseCase
	ApplicantUC    *usecase.ApplicantUseCase
	ProjectUC      *usecase.ProjectUseCase
	ApplicationUC  *usecase.ApplicationUseCase
	NotificationUC *usecase.NotificationUseCase
	DocumentUC     *usecase.DocumentUseCase
	MatchSvc       *matchsvc.Service
	ReportingUC    *reporting.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (solo admin administra tenants)
	companies := protected.Group("/companies", RequireRole(entity.RoleAdmin))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Applicants (los developers gestionan su pipeline)
	applicants := protected.Group("/applicants")
	applicantHandler := NewApplicantHandler(deps.ApplicantUC)
	applicants.Post("/", RequireRole(entity.RoleAdmin, entity.RoleDeveloper), applicantHandler.Create)
	applicants.Get("/", RequireRole(entity.RoleAdmin, entity.RoleDeveloper), applicantHandler.List)
	applicants.Get("/:id", applicantHandler.GetByID)
	applicants.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleDeveloper), applicantHandler.Update)

	// Projects (lectura para todos los autenticados, escritura para developers)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/search", projectHandler.Search)
	projects.Get("/", projectHandler.List)
	projects.Post("/", RequireRole(entity.RoleAdmin, entity.RoleDeveloper), projectHandler.Create)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleDeveloper), projectHandler.Update)

	// Applications (el gate por registro vive en el caso de uso; aquí solo RBAC grueso)
	applications := protected.Group("/applications")
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	applications.Post("/", applicationHandler.Submit)
	applications.Get("/", RequireRole(entity.RoleAdmin, entity.RoleDeveloper, entity.RoleLender), applicationHandler.List)
	applications.Get("/:id/detail", applicationHandler.Detail)
	applications.Post("/:id/review", RequireRole(entity.RoleAdmin, entity.RoleDeveloper), applicationHandler.Review)
	applications.Post("/:id/withdraw", applicationHandler.Withdraw)
	applicants.Get("/:applicantId/applications", applicationHandler.ListByApplicant)

	// Matching (consumo read-only del backend externo)
	matchingHandler := NewMatchingHandler(deps.MatchSvc)
	matchingGroup := protected.Group("/matching")
	matchingGroup.Get("/applicants/:applicantId", matchingHandler.Matches)
	matchingGroup.Get("/eligibility/:applicantId", matchingHandler.Eligibility)
	protected.Get("/analytics/heatmap", matchingHandler.Heatmap)

	// Reporting (dashboard de lender)
	reportingGroup := protected.Group("/reporting", RequireRole(entity.RoleAdmin, entity.RoleLender))
	reportingHandler := NewReportingHandler(deps.ReportingUC)
	reportingGroup.Get("/dashboard", reportingHandler.Dashboard)
	reportingGroup.Get("/cra/pdf", reportingHandler.CRAPDF)
	reportingGroup.Get("/cra/xml", reportingHandler.CRAXML)

	// Notifications y documents (del usuario autenticado)
	notificationHandler := NewNotificationHandler(deps.NotificationUC, deps.DocumentUC)
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	documents := protected.Group("/documents")
	documents.Post("/", notificationHandler.CreateDocument)
	documents.Get("/", notificationHandler.ListDocuments)
	documents.Delete("/:id", notificationHandler.DeleteDocument)
}
