package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/middleware"
	"github.com/nmihaylov96/sportzone-api/models"
	"gorm.io/gorm"
)

type CreateReviewInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// POST /api/reviews
// Creating a review also refreshes the product's rating aggregate so the
// catalog's displayed rating and review count stay in step.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while creating the review"})
			return
		}

		review := models.Review{
			UserID:    user.ID,
			ProductID: input.ProductID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&review).Error; err != nil {
				return err
			}

			var agg struct {
				Avg   float64
				Count int
			}
			if err := tx.Model(&models.Review{}).
				Select("AVG(rating) AS avg, COUNT(*) AS count").
				Where("product_id = ?", input.ProductID).
				Scan(&agg).Error; err != nil {
				return err
			}

			return tx.Model(&models.Product{}).
				Where("id = ?", input.ProductID).
				Updates(map[string]interface{}{
					"rating":       agg.Avg,
					"review_count": agg.Count,
				}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while creating the review"})
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}

// GET /api/reviews/:productId
func GetReviewsByProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var reviews []models.Review
		if err := db.Preload("User").
			Where("product_id = ?", productID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
