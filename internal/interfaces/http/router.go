package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmalab-api/internal/application/auth"
	"github.com/jhoicas/Farmalab-api/internal/application/inventory"
	"github.com/jhoicas/Farmalab-api/internal/application/production"
	"github.com/jhoicas/Farmalab-api/internal/application/reports"
	"github.com/jhoicas/Farmalab-api/internal/application/sales"
	"github.com/jhoicas/Farmalab-api/internal/application/usecase"
	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ChemicalUC        *usecase.ChemicalUseCase
	StockUC           *inventory.StockUseCase
	RegisterPurchase  *inventory.RegisterPurchaseUseCase
	MedicineUC        *usecase.MedicineUseCase
	SupplierUC        *usecase.SupplierUseCase
	WholesalerUC      *usecase.WholesalerUseCase
	ProduceUC         *production.ProduceUseCase
	ProductionHistory *production.HistoryUseCase
	CreateOrder       *sales.CreateOrderUseCase
	TransitionOrder   *sales.TransitionOrderUseCase
	DeliveryNote      *sales.DeliveryNoteUseCase
	ReportsUC         *reports.ReportsUseCase
	AuthUC            *auth.AuthUseCase
	JWTSecret         string
}

// Router registra las rutas de la API. Cada grupo queda restringido al rol
// que opera esa parte del negocio; admin pasa en todos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Químicos y compras (bodega)
	chemicals := protected.Group("/chemicals", RequireRole(entity.RoleBodeguero, entity.RoleProduccion))
	chemicalHandler := NewChemicalHandler(deps.ChemicalUC, deps.StockUC)
	chemicals.Post("/", chemicalHandler.Create)
	chemicals.Get("/", chemicalHandler.List)
	chemicals.Get("/:id", chemicalHandler.GetByID)
	chemicals.Get("/:id/stock", chemicalHandler.GetStock)

	purchases := protected.Group("/purchases", RequireRole(entity.RoleBodeguero))
	purchaseHandler := NewPurchaseHandler(deps.RegisterPurchase)
	purchases.Post("/", purchaseHandler.Register)

	suppliers := protected.Group("/suppliers", RequireRole(entity.RoleBodeguero))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Medicamentos y producción
	medicines := protected.Group("/medicines", RequireRole(entity.RoleProduccion, entity.RoleVendedor))
	medicineHandler := NewMedicineHandler(deps.MedicineUC)
	medicines.Post("/", medicineHandler.Create)
	medicines.Get("/", medicineHandler.List)
	medicines.Get("/:id", medicineHandler.GetByID)

	productionGroup := protected.Group("/production", RequireRole(entity.RoleProduccion))
	productionHandler := NewProductionHandler(deps.ProduceUC, deps.ProductionHistory)
	productionGroup.Post("/", productionHandler.Produce)
	productionGroup.Get("/", productionHandler.History)

	// Pedidos y mayoristas (ventas)
	wholesalers := protected.Group("/wholesalers", RequireRole(entity.RoleVendedor))
	wholesalerHandler := NewWholesalerHandler(deps.WholesalerUC)
	wholesalers.Post("/", wholesalerHandler.Create)
	wholesalers.Get("/", wholesalerHandler.List)

	orders := protected.Group("/orders", RequireRole(entity.RoleVendedor))
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.TransitionOrder, deps.DeliveryNote)
	orders.Post("/", orderHandler.Create)
	orders.Post("/:id/transition", orderHandler.Transition)
	orders.Get("/:id/delivery-note", orderHandler.DeliveryNote)

	// Reportes (cualquier rol autenticado)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/stock", reportHandler.StockSnapshot)
	reportsGroup.Get("/purchases", reportHandler.PurchaseHistory)
	reportsGroup.Get("/sales", reportHandler.SalesHistory)
	reportsGroup.Get("/surplus", reportHandler.Surplus)
	reportsGroup.Get("/profit", reportHandler.ProfitDashboard)
}
