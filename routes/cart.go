package routes

import (
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	cartControllers "github.com/nmihaylov96/sportzone-api/controllers/cart"
	wishlistControllers "github.com/nmihaylov96/sportzone-api/controllers/wishlist"
	"github.com/nmihaylov96/sportzone-api/middleware"
	"gorm.io/gorm"
)

func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, sessions *scs.SessionManager) {
	cart := api.Group("/cart")
	cart.Use(middleware.RequireAuth(db, sessions))
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.AddToCart(db))
		cart.PUT("/:id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:id", cartControllers.RemoveCartItem(db))
		cart.DELETE("", cartControllers.ClearCart(db))
	}

	wishlist := api.Group("/wishlist")
	wishlist.Use(middleware.RequireAuth(db, sessions))
	{
		wishlist.GET("", wishlistControllers.GetWishlist(db))
		wishlist.POST("", wishlistControllers.AddToWishlist(db))
		wishlist.DELETE("/:productId", wishlistControllers.RemoveFromWishlist(db))
	}
}
