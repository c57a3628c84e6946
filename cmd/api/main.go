package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/EzequielRindello/StockCore/internal/application/analytics"
	"github.com/EzequielRindello/StockCore/internal/application/usecase"
	infrapdf "github.com/EzequielRindello/StockCore/internal/infrastructure/pdf"
	"github.com/EzequielRindello/StockCore/internal/infrastructure/postgres"
	"github.com/EzequielRindello/StockCore/internal/infrastructure/session"
	httpRouter "github.com/EzequielRindello/StockCore/internal/interfaces/http"
	"github.com/EzequielRindello/StockCore/pkg/config"
	"github.com/EzequielRindello/StockCore/pkg/logger"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessions := session.NewStore(time.Duration(cfg.Session.IdleMinutes) * time.Minute)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, movementRepo, txRunner)
	stockUC := usecase.NewStockUseCase(movementRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo, txRunner)
	authUC := usecase.NewAuthUseCase(userRepo, sessions)
	comboUC := usecase.NewComboUseCase(categoryRepo, productRepo)

	// PDF: reporte gráfico del dashboard
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, companyRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		StockUC:     stockUC,
		UserUC:      userUC,
		AuthUC:      authUC,
		ComboUC:     comboUC,
		DashboardUC: dashboardUC,
		CookieName:  cfg.Session.CookieName,
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
