package testimonialControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/models"
	"gorm.io/gorm"
)

// GET /api/testimonials
func GetTestimonials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var testimonials []models.Testimonial
		if err := db.Find(&testimonials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching testimonials"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}
