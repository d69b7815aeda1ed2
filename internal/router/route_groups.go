package router

import (
	"retail_pos_backend/internal/handlers"
	"retail_pos_backend/internal/middleware"
	"retail_pos_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up the authenticated user-management routes.
// Account creation for staff/admin is admin-only; login and customer
// registration are wired as public routes in Setup.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authenticatedGroup.POST("/users", middleware.RoleAuthMiddleware(models.RoleAdmin), authHandler.CreateUser)
}

// SetupProductRoutes sets up the product catalog routes. Reads are open to
// any authenticated user; mutations are admin-only.
func SetupProductRoutes(authenticatedGroup *gin.RouterGroup, productHandler *handlers.ProductHandler) {
	productRoutes := authenticatedGroup.Group("/products")
	{
		productRoutes.GET("", productHandler.GetProducts)
		productRoutes.GET("/:id", productHandler.GetProductByID)

		productRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin), productHandler.CreateProduct)
		productRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), productHandler.UpdateProduct)
		productRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), productHandler.DeleteProduct)
	}
}

// SetupOrderRoutes sets up checkout, payment and order reporting routes.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler, reportHandler *handlers.ReportHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	{
		orderRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleStaff, models.RoleCustomer), orderHandler.CreateOrder)
		orderRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleAdmin), orderHandler.GetOrders)
		orderRoutes.GET("/myorders", orderHandler.GetMyOrders)
		orderRoutes.GET("/dashboard-stats", middleware.RoleAuthMiddleware(models.RoleAdmin), reportHandler.GetDashboardStats)
		orderRoutes.GET("/my-sales", middleware.RoleAuthMiddleware(models.RoleStaff), reportHandler.GetMySales)
		orderRoutes.GET("/my-frequent-items", middleware.RoleAuthMiddleware(models.RoleStaff, models.RoleCustomer), reportHandler.GetMyFrequentItems)
		orderRoutes.PUT("/:id/pay", orderHandler.PayOrder)
	}
}

// SetupSupplierRoutes sets up the supplier CRUD routes, admin-only.
func SetupSupplierRoutes(authenticatedGroup *gin.RouterGroup, supplierHandler *handlers.SupplierHandler) {
	supplierRoutes := authenticatedGroup.Group("/suppliers")
	supplierRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		supplierRoutes.GET("", supplierHandler.GetSuppliers)
		supplierRoutes.POST("", supplierHandler.CreateSupplier)
		supplierRoutes.PUT("/:id", supplierHandler.UpdateSupplier)
		supplierRoutes.DELETE("/:id", supplierHandler.DeleteSupplier)
	}
}

// SetupPurchaseRoutes sets up the stock receipt route, admin-only.
func SetupPurchaseRoutes(authenticatedGroup *gin.RouterGroup, purchaseHandler *handlers.PurchaseHandler) {
	purchaseRoutes := authenticatedGroup.Group("/purchases")
	purchaseRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		purchaseRoutes.POST("", purchaseHandler.CreatePurchase)
	}
}

// SetupDiscountRoutes sets up the discount CRUD and validation routes.
// Validation is open to any authenticated user; the rest is admin-only.
func SetupDiscountRoutes(authenticatedGroup *gin.RouterGroup, discountHandler *handlers.DiscountHandler) {
	discountRoutes := authenticatedGroup.Group("/discounts")
	{
		discountRoutes.GET("/validate/:code", discountHandler.ValidateDiscount)

		discountRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleAdmin), discountHandler.GetDiscounts)
		discountRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin), discountHandler.CreateDiscount)
		discountRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), discountHandler.DeleteDiscount)
	}
}
