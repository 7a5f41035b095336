package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/auth"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/transfer"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/usecase"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
)

// RouterDeps are the router's dependencies.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	ScheduleUC *usecase.ScheduleUseCase
	ExportUC   *transfer.ExportUseCase
	ImportUC   *transfer.ImportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protected)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ScheduleUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), customerHandler.Delete)
	customers.Post("/:id/contact", customerHandler.ContactAction)

	// Services (protected)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ScheduleUC)
	services.Put("/:id", serviceHandler.Update)

	// Export and import (protected)
	transferHandler := NewTransferHandler(deps.ExportUC, deps.ImportUC)
	export := protected.Group("/export")
	export.Get("/csv", transferHandler.ExportCSV)
	export.Get("/xml", transferHandler.ExportXML)
	export.Get("/pdf", transferHandler.ExportPDF)

	imports := protected.Group("/import")
	imports.Post("/", transferHandler.ImportStart)
	imports.Get("/:sessionID/conflicts", transferHandler.ImportConflicts)
	imports.Post("/:sessionID/resolve", transferHandler.ImportResolve)
	imports.Delete("/:sessionID", transferHandler.ImportCancel)
}
