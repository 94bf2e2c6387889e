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
	"github.com/tu-usuario/pos-minimarket/internal/application/auth"
	"github.com/tu-usuario/pos-minimarket/internal/application/reports"
	"github.com/tu-usuario/pos-minimarket/internal/application/sales"
	"github.com/tu-usuario/pos-minimarket/internal/application/usecase"
	infracache "github.com/tu-usuario/pos-minimarket/internal/infrastructure/cache"
	infrapdf "github.com/tu-usuario/pos-minimarket/internal/infrastructure/pdf"
	"github.com/tu-usuario/pos-minimarket/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/pos-minimarket/internal/interfaces/http"
	"github.com/tu-usuario/pos-minimarket/pkg/config"
	"github.com/tu-usuario/pos-minimarket/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	cashierRepo := postgres.NewCashierRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	taxRateRepo := postgres.NewTaxRateRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache de reportes: Redis si hay dirección configurada, noop si no.
	var reportCache reports.ReportCache
	if cfg.Cache.Addr != "" {
		redisCache, err := infracache.NewRedisReportCache(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		reportCache = redisCache
		log.Info().Str("addr", cfg.Cache.Addr).Msg("cache de reportes en Redis")
	} else {
		reportCache = infracache.NewNoopReportCache()
		log.Info().Msg("cache de reportes desactivado")
	}

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	cashierUC := usecase.NewCashierUseCase(cashierRepo)
	taxRateUC := usecase.NewTaxRateUseCase(taxRateRepo)
	authUC := auth.NewAuthUseCase(adminRepo, cashierRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	commitSaleUC := sales.NewCommitSaleUseCase(
		txRunner, cashierRepo, taxRateRepo, saleRepo,
		cfg.POS.DefaultIVARate, log,
	)
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := sales.NewReceiptUseCase(saleRepo, cashierRepo, productRepo, receiptGen)
	reportUC := reports.NewReportUseCase(
		reportRepo, productRepo, reportCache,
		time.Duration(cfg.Cache.TTLSec)*time.Second, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		CashierUC:  cashierUC,
		TaxRateUC:  taxRateUC,
		AuthUC:     authUC,
		CommitSale: commitSaleUC,
		ReceiptUC:  receiptUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
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
