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

	"github.com/rahulxkr/storekart-api/internal/application/auth"
	"github.com/rahulxkr/storekart-api/internal/application/usecase"
	"github.com/rahulxkr/storekart-api/internal/infrastructure/cloudinary"
	"github.com/rahulxkr/storekart-api/internal/infrastructure/postgres"
	httpRouter "github.com/rahulxkr/storekart-api/internal/interfaces/http"
	"github.com/rahulxkr/storekart-api/pkg/config"
	"github.com/rahulxkr/storekart-api/pkg/jwt"
	"github.com/rahulxkr/storekart-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	adminRepo := postgres.NewAdminRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	storeCategoryRepo := postgres.NewStoreCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)

	uploader := cloudinary.NewUploader(cfg.Cloudinary)
	if cfg.Cloudinary.CloudName == "" {
		log.Warn().Msg("Cloudinary not configured, image uploads will fail")
	}

	tokens := jwt.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     time.Duration(cfg.JWT.AccessHours) * time.Hour,
		RefreshTTL:    time.Duration(cfg.JWT.RefreshHours) * time.Hour,
		Issuer:        cfg.JWT.Issuer,
	}
	policy := usecase.UniquePolicy{AmongActiveOnly: cfg.Auth.UniqueAmongActiveOnly}

	sessionUC := auth.NewSessionUseCase(adminRepo, tokens, cfg.Auth.BcryptCost)
	adminUC := usecase.NewAdminUseCase(adminRepo, sessionUC, uploader, policy)
	partnerUC := usecase.NewPartnerUseCase(adminRepo, roleRepo, sessionUC, uploader, policy)
	storeUC := usecase.NewStoreUseCase(storeRepo, adminRepo, roleRepo, sessionUC, uploader, policy)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, uploader)
	storeCategoryUC := usecase.NewStoreCategoryUseCase(storeCategoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, uploader)
	bannerUC := usecase.NewBannerUseCase(bannerRepo, uploader)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Storekart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:       sessionUC,
		AdminUC:         adminUC,
		PartnerUC:       partnerUC,
		StoreUC:         storeUC,
		RoleUC:          roleUC,
		CategoryUC:      categoryUC,
		StoreCategoryUC: storeCategoryUC,
		ProductUC:       productUC,
		BannerUC:        bannerUC,
		Tokens:          tokens,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
