package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/models"
	"gorm.io/gorm"
)

// PUT /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while updating the product"})
			}
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if !input.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be positive"})
			return
		}

		product.Name = input.Name
		product.NameEn = input.NameEn
		product.Description = input.Description
		product.DescriptionEn = input.DescriptionEn
		product.Price = input.Price
		product.DiscountedPrice = input.DiscountedPrice
		product.CategoryID = input.CategoryID
		product.Image = input.Image
		product.Stock = input.Stock
		product.Badge = input.Badge
		product.BadgeEn = input.BadgeEn
		product.Featured = input.Featured
		if input.Brand != "" {
			product.Brand = input.Brand
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while updating the product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
