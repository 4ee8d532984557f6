package routes

import (
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	authControllers "github.com/nmihaylov96/sportzone-api/controllers/auth"
	"github.com/nmihaylov96/sportzone-api/middleware"
	"gorm.io/gorm"
)

func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, sessions *scs.SessionManager) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authControllers.Register(db))
		auth.POST("/login", authControllers.Login(db, sessions))
		auth.POST("/logout", authControllers.Logout(sessions))
		auth.GET("/me", middleware.RequireAuth(db, sessions), authControllers.Me())
	}
}
