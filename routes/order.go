package routes

import (
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	orderControllers "github.com/nmihaylov96/sportzone-api/controllers/order"
	paymentControllers "github.com/nmihaylov96/sportzone-api/controllers/payment"
	reviewControllers "github.com/nmihaylov96/sportzone-api/controllers/review"
	"github.com/nmihaylov96/sportzone-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, sessions *scs.SessionManager, gateway paymentControllers.Gateway) {
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(db, sessions))
	{
		authed.POST("/create-payment-intent", paymentControllers.CreatePaymentIntentHandler(gateway))

		authed.POST("/orders", orderControllers.PlaceOrderHandler(db))
		authed.GET("/orders", orderControllers.GetUserOrders(db))
		authed.GET("/orders/:id", orderControllers.GetOrderByID(db))

		authed.POST("/reviews", reviewControllers.CreateReview(db))

		// Status moves are admin-only.
		authed.PATCH("/orders/:id/status", middleware.RequireAdmin(), orderControllers.UpdateOrderStatusHandler(db))
	}
}
