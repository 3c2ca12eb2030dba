package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/auth"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/ledger"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger    *ledger.Ledger
	AuthUC    *auth.AuthUseCase
	JWTSecret string
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

	// Catálogo y filtro
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Ledger)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	protected.Put("/filter", productHandler.SetFilter)
	protected.Delete("/filter", productHandler.ResetFilter)

	// Carrito
	cart := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.Ledger)
	cart.Get("/", cartHandler.Get)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:id", cartHandler.UpdateItem)
	cart.Delete("/items/:id", cartHandler.RemoveItem)
	cart.Delete("/", cartHandler.Clear)

	// Facturas, devoluciones y reembolsos
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Ledger)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:number", invoiceHandler.GetByNumber)
	invoices.Post("/:number/refunds", invoiceHandler.Refund)

	protected.Post("/returns", invoiceHandler.Return)

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.Ledger)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", RequireRole(entity.RoleAdmin), clientHandler.Delete)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Ledger)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/inventory-value", reportHandler.InventoryValue)
}
