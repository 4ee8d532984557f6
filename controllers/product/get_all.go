package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/models"
	"gorm.io/gorm"
)

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

// GET /api/products?limit=&offset=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := intQuery(c, "limit", 100)
		offset := intQuery(c, "offset", 0)

		var products []models.Product
		if err := db.Limit(limit).Offset(offset).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/featured?limit=
func GetFeaturedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := intQuery(c, "limit", 8)

		var products []models.Product
		if err := db.Where("featured = ?", true).Limit(limit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching featured products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/category/:id
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
			return
		}
		limit := intQuery(c, "limit", 100)
		offset := intQuery(c, "offset", 0)

		var products []models.Product
		if err := db.Where("category_id = ?", categoryID).
			Limit(limit).Offset(offset).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching products by category"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/search?q=
// Rejects an empty query before touching the database.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter 'q' is required"})
			return
		}

		pattern := "%" + strings.ToLower(query) + "%"
		var products []models.Product
		if err := db.Where(
			"lower(name) LIKE ? OR lower(name_en) LIKE ? OR lower(description) LIKE ? OR lower(description_en) LIKE ?",
			pattern, pattern, pattern, pattern,
		).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while searching products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
