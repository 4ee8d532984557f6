package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/models"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name   string `json:"name" binding:"required"`
	NameEn string `json:"nameEn" binding:"required"`
	Image  string `json:"image" binding:"required"`
	Icon   string `json:"icon" binding:"required"`
}

// GET /api/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /api/categories/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching the category"})
			}
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// POST /api/admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			Name:   input.Name,
			NameEn: input.NameEn,
			Image:  input.Image,
			Icon:   input.Icon,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while creating the category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}
