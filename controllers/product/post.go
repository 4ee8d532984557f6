package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name            string              `json:"name" binding:"required"`
	NameEn          string              `json:"nameEn" binding:"required"`
	Description     string              `json:"description" binding:"required"`
	DescriptionEn   string              `json:"descriptionEn" binding:"required"`
	Price           decimal.Decimal     `json:"price" binding:"required"`
	DiscountedPrice decimal.NullDecimal `json:"discountedPrice"`
	CategoryID      uint                `json:"categoryId" binding:"required"`
	Image           string              `json:"image" binding:"required"`
	Stock           int                 `json:"stock"`
	Brand           string              `json:"brand"`
	Badge           string              `json:"badge"`
	BadgeEn         string              `json:"badgeEn"`
	Featured        bool                `json:"featured"`
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if !input.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be positive"})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category does not exist"})
			return
		}

		product := models.Product{
			Name:            input.Name,
			NameEn:          input.NameEn,
			Description:     input.Description,
			DescriptionEn:   input.DescriptionEn,
			Price:           input.Price,
			DiscountedPrice: input.DiscountedPrice,
			CategoryID:      input.CategoryID,
			Image:           input.Image,
			Stock:           input.Stock,
			Brand:           input.Brand,
			Badge:           input.Badge,
			BadgeEn:         input.BadgeEn,
			Featured:        input.Featured,
		}
		if product.Brand == "" {
			product.Brand = "SportZone"
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while creating the product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
