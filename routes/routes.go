package routes

import (
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/nmihaylov96/sportzone-api/controllers/payment"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public,
// authenticated and admin route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *scs.SessionManager, gateway paymentControllers.Gateway) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db, sessions)
	SetupCatalogRoutes(api, db)
	SetupCartRoutes(api, db, sessions)
	SetupOrderRoutes(api, db, sessions, gateway)
	SetupAdminRoutes(api, db, sessions)
}
