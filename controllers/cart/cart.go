package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/middleware"
	"github.com/nmihaylov96/sportzone-api/models"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type AddCartItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// AddItem merges into an existing (user, product) line by summing
// quantities, or inserts a new line. One line per pair, always.
func AddItem(db *gorm.DB, userID, productID uint, quantity int) (models.CartItem, error) {
	var item models.CartItem

	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		default:
			return err
		}

		item.Product = product
		return nil
	})

	return item, err
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		// Joined with live product data so displayed prices always
		// reflect the current catalog, not a snapshot.
		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", user.ID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching cart items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddItem(db, user.ID, input.ProductID, input.Quantity)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while adding to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /api/cart/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item ID"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while updating the cart item"})
			return
		}

		db.Preload("Product").First(&item, item.ID)
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item ID"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while removing the cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed successfully"})
	}
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		if err := db.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while clearing the cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
	}
}
