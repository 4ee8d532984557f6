package authControllers

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/middleware"
	"github.com/nmihaylov96/sportzone-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			return
		}
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during registration"})
			return
		}

		user := models.User{
			Username:  req.Username,
			Email:     req.Email,
			Password:  string(hash),
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during registration"})
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, sessions *scs.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect username or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during login"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect username or password"})
			return
		}

		// Rotate the session token on privilege change.
		if err := sessions.RenewToken(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during login"})
			return
		}
		sessions.Put(c.Request.Context(), middleware.SessionUserKey, int(user.ID))

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// POST /api/auth/logout
func Logout(sessions *scs.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Destroy(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during logout"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// GET /api/auth/me
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
