package server

import (
	"go-stock-api/internal/handler"
	"go-stock-api/internal/middleware"
	"go-stock-api/internal/repository"
	"go-stock-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers onto a fiber app.
func New(db *gorm.DB) *fiber.App {
	// Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	providerRepo := repository.NewProviderRepo(db)
	productRepo := repository.NewProductRepo(db)
	batchRepo := repository.NewBatchRepo(db)

	authService := service.NewAuthService(userRepo, tokenRepo)
	invService := service.NewInventoryService(productRepo, batchRepo, categoryRepo, providerRepo)

	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	providerHandler := handler.NewProviderHandler(providerRepo)
	invHandler := handler.NewInventoryHandler(invService)

	app := fiber.New(fiber.Config{
		AppName: "Stock API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// ============ PUBLIC ROUTES ============
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	// Every resource below is scoped to the authenticated owner
	protected := app.Group("", middleware.RequireAuth(tokenRepo))

	protected.Get("/categories", categoryHandler.List)
	protected.Post("/categories", categoryHandler.Create)
	protected.Get("/categories/:id", categoryHandler.Get)
	protected.Put("/categories/:id", categoryHandler.Update)
	protected.Delete("/categories/:id", categoryHandler.Delete)

	protected.Get("/providers", providerHandler.List)
	protected.Post("/providers", providerHandler.Create)
	protected.Get("/providers/:id", providerHandler.Get)
	protected.Put("/providers/:id", providerHandler.Update)
	protected.Delete("/providers/:id", providerHandler.Delete)

	protected.Get("/products", invHandler.ListProducts)
	protected.Post("/products", invHandler.CreateProduct)
	protected.Get("/products/:id", invHandler.GetProduct)
	protected.Put("/products/:id", invHandler.UpdateProduct)
	protected.Delete("/products/:id", invHandler.DeleteProduct)

	protected.Get("/products/:id/batches", invHandler.ListBatches)
	protected.Post("/products/:id/batches", invHandler.CreateBatch)
	protected.Get("/products/:id/batches/:batchID", invHandler.GetBatch)
	protected.Put("/products/:id/batches/:batchID", invHandler.UpdateBatch)
	protected.Delete("/products/:id/batches/:batchID", invHandler.DeleteBatch)

	return app
}
