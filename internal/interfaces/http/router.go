package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ManufacturerUC *usecase.ManufacturerUseCase
	CounterpartyUC *usecase.CounterpartyUseCase
	AgreementUC    *usecase.AgreementUseCase
	ProductUC      *usecase.ProductUseCase
	StockUC        *usecase.StockUseCase
	SaleUC         *sales.SaleUseCase
	ReportUC       *usecase.ReportUseCase
	ReportPDF      *pdf.ReportGenerator
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

	// Manufacturers
	manufacturers := protected.Group("/manufacturers")
	manufacturerHandler := NewManufacturerHandler(deps.ManufacturerUC)
	manufacturers.Post("/", manufacturerHandler.Create)
	manufacturers.Get("/", manufacturerHandler.List)
	manufacturers.Get("/:id", manufacturerHandler.GetByID)
	manufacturers.Put("/:id", manufacturerHandler.Update)
	manufacturers.Delete("/:id", manufacturerHandler.Delete)

	// Counterparties
	counterparties := protected.Group("/counterparties")
	counterpartyHandler := NewCounterpartyHandler(deps.CounterpartyUC)
	counterparties.Post("/", counterpartyHandler.Create)
	counterparties.Get("/", counterpartyHandler.List)
	counterparties.Get("/:id", counterpartyHandler.GetByID)
	counterparties.Put("/:id", counterpartyHandler.Update)
	counterparties.Delete("/:id", counterpartyHandler.Delete)

	// Agreements
	agreements := protected.Group("/agreements")
	agreementHandler := NewAgreementHandler(deps.AgreementUC)
	agreements.Post("/", agreementHandler.Create)
	agreements.Get("/", agreementHandler.List)
	agreements.Get("/:id", agreementHandler.GetByID)
	agreements.Put("/:id", agreementHandler.Update)
	agreements.Delete("/:id", agreementHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock (ajustes directos)
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Post("/", stockHandler.Create)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Put("/:id", stockHandler.Update)
	stocks.Delete("/:id", stockHandler.Delete)

	// Sales (libro de ventas)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDF)
	reports.Get("/", reportHandler.Get)
	reports.Get("/pdf", reportHandler.GetPDF)
}
