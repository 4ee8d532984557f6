package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/middleware"
	"github.com/nmihaylov96/sportzone-api/models"
	"gorm.io/gorm"
)

type AddWishlistInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

// GET /api/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var items []models.WishlistItem
		if err := db.Preload("Product").Where("user_id = ?", user.ID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching the wishlist"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/wishlist
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input AddWishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		var item models.WishlistItem
		err := db.Where("user_id = ? AND product_id = ?", user.ID, input.ProductID).First(&item).Error
		if err == nil {
			// Already wishlisted, nothing to do.
			item.Product = product
			c.JSON(http.StatusOK, item)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while updating the wishlist"})
			return
		}

		item = models.WishlistItem{UserID: user.ID, ProductID: input.ProductID, Product: product}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while updating the wishlist"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /api/wishlist/:productId
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", user.ID, productID).
			Delete(&models.WishlistItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while updating the wishlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Wishlist item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist item removed"})
	}
}
