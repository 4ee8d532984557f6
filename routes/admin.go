package routes

import (
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	orderControllers "github.com/nmihaylov96/sportzone-api/controllers/order"
	productControllers "github.com/nmihaylov96/sportzone-api/controllers/product"
	"github.com/nmihaylov96/sportzone-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all /api/admin/* endpoints. Admin
// capability is a flag on the user record, checked per request.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, sessions *scs.SessionManager) {
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(db, sessions), middleware.RequireAdmin())
	{
		admin.GET("/orders", orderControllers.GetAllOrders(db))
		admin.GET("/orders/ws", orderControllers.OrderFeedHandler)

		products := admin.Group("/products")
		{
			products.POST("", productControllers.CreateProduct(db))
			products.PUT("/:id", productControllers.UpdateProduct(db))
			products.DELETE("/:id", productControllers.DeleteProduct(db))
			products.GET("/export-excel", productControllers.ExportProductsToExcel(db))
		}

		admin.POST("/categories", productControllers.CreateCategory(db))
	}
}
