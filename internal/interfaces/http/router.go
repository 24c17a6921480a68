package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/textil-ops/internal/application/reports"
	"github.com/tu-usuario/textil-ops/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC      *usecase.OrderUseCase
	ReturnUC     *usecase.ReturnUseCase
	SupplierUC   *usecase.SupplierUseCase
	CategoryUC   *usecase.CategoryUseCase
	SettingsUC   *usecase.SettingsUseCase
	DashboardUC  *reports.DashboardUseCase
	StatementUC  *reports.StatementUseCase
	StatementPDF *reports.StatementPDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/metrics", dashboardHandler.GetMetrics)

	// Reports (liquidación mensual)
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.StatementUC, deps.StatementPDF)
	reportsGroup.Get("/statement", reportHandler.GetStatement)
	reportsGroup.Get("/statement/pdf", reportHandler.GetStatementPDF)

	// Orders
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Returns
	returns := api.Group("/returns")
	returnHandler := NewReturnHandler(deps.ReturnUC)
	returns.Post("/", returnHandler.Create)
	returns.Get("/", returnHandler.List)
	returns.Put("/:id", returnHandler.Update)
	returns.Delete("/:id", returnHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Patch("/:id/status", supplierHandler.ToggleStatus)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Deactivate)

	// Settings (perfil de empresa, fila única)
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
}
