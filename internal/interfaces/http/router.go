package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-minimarket/internal/application/auth"
	"github.com/tu-usuario/pos-minimarket/internal/application/reports"
	"github.com/tu-usuario/pos-minimarket/internal/application/sales"
	"github.com/tu-usuario/pos-minimarket/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	CashierUC  *usecase.CashierUseCase
	TaxRateUC  *usecase.TaxRateUseCase
	AuthUC     *auth.AuthUseCase
	CommitSale *sales.CommitSaleUseCase
	ReceiptUC  *sales.ReceiptUseCase
	ReportUC   *reports.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): bootstrap único, login admin y login cajero por RUT
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/bootstrap", authHandler.Bootstrap)
	authGroup.Post("/admin/login", authHandler.AdminLogin)
	authGroup.Post("/cashier/login", authHandler.CashierLogin)

	// Rutas protegidas (requieren Bearer Token de administrador)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Cashiers (protegido)
	cashiers := protected.Group("/cashiers")
	cashierHandler := NewCashierHandler(deps.CashierUC)
	cashiers.Post("/", cashierHandler.Create)
	cashiers.Get("/", cashierHandler.List)
	cashiers.Put("/:id", cashierHandler.Update)
	cashiers.Delete("/:id", cashierHandler.Delete)

	// Tax rate (protegido, fila singleton)
	taxRateHandler := NewTaxRateHandler(deps.TaxRateUC)
	protected.Get("/tax-rate", taxRateHandler.Get)
	protected.Put("/tax-rate", taxRateHandler.Update)

	// Sales (protegido): motor atómico + consulta + comprobante
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CommitSale, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Commit)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt.pdf", saleHandler.Receipt)

	// Reports (protegido, solo lectura)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/daily", reportHandler.DailySales)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
}
