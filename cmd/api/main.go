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

	"github.com/jhoicas/Farmalab-api/internal/application/auth"
	"github.com/jhoicas/Farmalab-api/internal/application/inventory"
	"github.com/jhoicas/Farmalab-api/internal/application/production"
	"github.com/jhoicas/Farmalab-api/internal/application/reports"
	"github.com/jhoicas/Farmalab-api/internal/application/sales"
	"github.com/jhoicas/Farmalab-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Farmalab-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Farmalab-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Farmalab-api/internal/interfaces/http"
	"github.com/jhoicas/Farmalab-api/internal/migrations"
	"github.com/jhoicas/Farmalab-api/pkg/config"
	"github.com/jhoicas/Farmalab-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Name, logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	if err := migrations.Up(cfg.DB.ConnectionString(), "migrations"); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios fuera de transacción (lecturas y catálogos simples)
	chemicalRepo := postgres.NewChemicalRepository(pool)
	stockRepo := postgres.NewChemicalStockRepository(pool)
	medicineRepo := postgres.NewMedicineRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	wholesalerRepo := postgres.NewWholesalerRepository(pool)
	finishedRepo := postgres.NewFinishedStockRepository(pool)
	_ = finishedRepo
	recordRepo := postgres.NewProductionRecordRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	chemicalUC := usecase.NewChemicalUseCase(txRunner, chemicalRepo, stockRepo)
	medicineUC := usecase.NewMedicineUseCase(txRunner, medicineRepo, chemicalRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	wholesalerUC := usecase.NewWholesalerUseCase(wholesalerRepo)
	stockUC := inventory.NewStockUseCase(stockRepo)
	registerPurchaseUC := inventory.NewRegisterPurchaseUseCase(txRunner, chemicalRepo, supplierRepo)
	produceUC := production.NewProduceUseCase(txRunner, medicineRepo)
	productionHistoryUC := production.NewHistoryUseCase(recordRepo)
	createOrderUC := sales.NewCreateOrderUseCase(txRunner, wholesalerRepo, medicineRepo)
	transitionOrderUC := sales.NewTransitionOrderUseCase(txRunner)
	reportsUC := reports.NewReportsUseCase(reportRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: remisión de despacho del pedido
	noteGenerator := infrapdf.NewMarotoDeliveryNoteGenerator("Farmalab")
	deliveryNoteUC := sales.NewDeliveryNoteUseCase(orderRepo, wholesalerRepo, medicineRepo, noteGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Farmalab API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ChemicalUC:        chemicalUC,
		StockUC:           stockUC,
		RegisterPurchase:  registerPurchaseUC,
		MedicineUC:        medicineUC,
		SupplierUC:        supplierUC,
		WholesalerUC:      wholesalerUC,
		ProduceUC:         produceUC,
		ProductionHistory: productionHistoryUC,
		CreateOrder:       createOrderUC,
		TransitionOrder:   transitionOrderUC,
		DeliveryNote:      deliveryNoteUC,
		ReportsUC:         reportsUC,
		AuthUC:            authUC,
		JWTSecret:         cfg.JWT.Secret,
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
