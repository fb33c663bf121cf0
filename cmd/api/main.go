package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/app"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/config"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/controllers"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/routes"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

const (
	shutdownTimeout = 10 * time.Second

	// Nightly sweep of expired refresh-token rows.
	tokenCleanupSchedule = "0 3 * * *"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize application")
	}
	defer application.Close()

	// Repositories.
	userRepo := repositories.NewUserRepository(application.DB)
	tokenRepo := repositories.NewTokenRepository(application.DB)
	shopRepo := repositories.NewShopRepository(application.DB)
	productRepo := repositories.NewProductRepository(application.DB)
	inventoryRepo := repositories.NewInventoryRepository(application.DB)
	cartRepo := repositories.NewCartRepository(application.DB)
	orderRepo := repositories.NewOrderRepository(application.DB)
	reviewRepo := repositories.NewReviewRepository(application.DB)
	supplierRepo := repositories.NewSupplierRepository(application.DB)
	supplierOrderRepo := repositories.NewSupplierOrderRepository(application.DB)
	analyticsRepo := repositories.NewAnalyticsRepository(application.DB)

	// Services.
	jwtManager := services.NewJWTManager(cfg)
	authService := services.NewAuthService(userRepo, tokenRepo, jwtManager)
	userService := services.NewUserService(userRepo)
	shopService := services.NewShopService(shopRepo)
	inventoryService := services.NewInventoryService(inventoryRepo, shopRepo)
	productService := services.NewProductService(productRepo, shopRepo, inventoryRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartService, productRepo, shopRepo, inventoryService)
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	supplierOrderService := services.NewSupplierOrderService(supplierOrderRepo, supplierRepo, shopRepo, productRepo, inventoryService)
	analyticsService := services.NewAnalyticsService(analyticsRepo, shopRepo)
	cleanupService := services.NewTokenCleanupService(authService)

	// Controllers and routes.
	router := routes.NewRouter(jwtManager, routes.Controllers{
		Health:        controllers.NewHealthController(),
		Auth:          controllers.NewAuthController(authService),
		User:          controllers.NewUserController(userService),
		Shop:          controllers.NewShopController(shopService),
		Product:       controllers.NewProductController(productService),
		Inventory:     controllers.NewInventoryController(inventoryService),
		Cart:          controllers.NewCartController(cartService),
		Order:         controllers.NewOrderController(orderService),
		Review:        controllers.NewReviewController(reviewService),
		Supplier:      controllers.NewSupplierController(supplierService),
		SupplierOrder: controllers.NewSupplierOrderController(supplierOrderService),
		Analytics:     controllers.NewAnalyticsController(analyticsService),
	})

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(tokenCleanupSchedule, cleanupService.Run); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule token cleanup job")
	}
	scheduler.Start()
	defer scheduler.Stop()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Logger.Infof("Server listening on port %s", cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	utils.Logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.Logger.WithError(err).Error("Graceful shutdown failed")
	}
}
