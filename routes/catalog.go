package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/nmihaylov96/sportzone-api/controllers/product"
	reviewControllers "github.com/nmihaylov96/sportzone-api/controllers/review"
	testimonialControllers "github.com/nmihaylov96/sportzone-api/controllers/testimonial"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the read-only public surface: products,
// categories, testimonials and review listings.
func SetupCatalogRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		// Fixed segments before the :id wildcard.
		products.GET("/featured", productControllers.GetFeaturedProducts(db))
		products.GET("/search", productControllers.SearchProducts(db))
		products.GET("/category/:id", productControllers.GetProductsByCategory(db))
		products.GET("/:id", productControllers.GetProductByID(db))
	}

	categories := api.Group("/categories")
	{
		categories.GET("", productControllers.GetAllCategories(db))
		categories.GET("/:id", productControllers.GetCategoryByID(db))
	}

	api.GET("/testimonials", testimonialControllers.GetTestimonials(db))
	api.GET("/reviews/:productId", reviewControllers.GetReviewsByProduct(db))
}
