package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-product-catalog/internal/config"
	"go-product-catalog/internal/handler"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"
	"go-product-catalog/internal/storage"
	"go-product-catalog/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg)
	db.AutoMigrate(&model.Product{})

	// 3. Setup Object Store
	store, err := storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.AWSRegion)
	if err != nil {
		log.Fatal("Failed to initialize object store: ", err)
	}

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	catalogService := service.NewCatalogService(productRepo, store)
	productHandler := handler.NewProductHandler(catalogService)
	healthHandler := handler.NewHealthHandler(productRepo)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Product Catalog Service",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 6. Routes
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")
	api.Get("/products", productHandler.ListProducts)
	// search has to come before the :id route
	api.Get("/products/search", productHandler.SearchProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)
	api.Post("/products/:id/image", productHandler.UploadImage)

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// Drain the pool only after in-flight requests finished.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exited")
}
