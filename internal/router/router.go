package router

import (
	"database/sql"

	"retail_pos_backend/internal/handlers"
	"retail_pos_backend/internal/middleware"
	"retail_pos_backend/internal/repositories"
	"retail_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes all application routes under /api.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)
	discountRepo := repositories.NewDiscountRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, db)
	productService := services.NewProductService(productRepo, db)
	supplierService := services.NewSupplierService(supplierRepo, db)
	orderService := services.NewOrderService(orderRepo, productRepo, discountRepo, db)
	purchaseService := services.NewPurchaseService(purchaseRepo, productRepo, supplierRepo, db)
	discountService := services.NewDiscountService(discountRepo, db)
	reportService := services.NewReportService(reportRepo, orderRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	orderHandler := handlers.NewOrderHandler(orderService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	discountHandler := handlers.NewDiscountHandler(discountService)
	reportHandler := handlers.NewReportHandler(reportService)

	api := engine.Group("/api")

	// Public routes: login and customer self-registration.
	api.POST("/users/login", authHandler.Login)
	api.POST("/users/register-customer", authHandler.RegisterCustomer)

	// Everything else requires a resolved bearer token.
	authenticated := api.Group("")
	authenticated.Use(middleware.AuthMiddleware(userRepo))
	{
		SetupUserRoutes(authenticated, authHandler)
		SetupProductRoutes(authenticated, productHandler)
		SetupOrderRoutes(authenticated, orderHandler, reportHandler)
		SetupSupplierRoutes(authenticated, supplierHandler)
		SetupPurchaseRoutes(authenticated, purchaseHandler)
		SetupDiscountRoutes(authenticated, discountHandler)
	}
}
