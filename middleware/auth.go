package middleware

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/models"
	"gorm.io/gorm"
)

// SessionUserKey is where the session stores the authenticated user's id.
const SessionUserKey = "userID"

// ctxUserKey is where RequireAuth parks the resolved user for handlers.
const ctxUserKey = "currentUser"

// RequireAuth resolves the session cookie into a user record and puts it
// on the request-scoped gin context. Handlers read the principal from
// there instead of any ambient state.
func RequireAuth(db *gorm.DB, sessions *scs.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := sessions.GetInt(c.Request.Context(), SessionUserKey)
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			// Stale session pointing at a deleted user.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// SetCurrentUser injects the principal for this request. Exposed for
// handler tests that bypass the session layer.
func SetCurrentUser(c *gin.Context, user models.User) {
	c.Set(ctxUserKey, user)
}

// RequireAdmin gates admin routes. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the principal RequireAuth resolved for this request.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(ctxUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
